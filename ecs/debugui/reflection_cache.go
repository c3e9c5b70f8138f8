package debugui

import (
	"fmt"
	"reflect"
	"sync"
)

// FieldInfo describes one exported field of a component struct.
type FieldInfo struct {
	Name      string
	Index     int
	Embedded  bool
	IsPointer bool
}

// ReflectionCache remembers the exported fields of component types.
type ReflectionCache struct {
	mu         sync.RWMutex
	fieldCache map[reflect.Type][]FieldInfo
}

// NewReflectionCache returns an empty cache.
func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{
		fieldCache: make(map[reflect.Type][]FieldInfo),
	}
}

// GetFields returns the exported fields of struct type t, computing them on
// first use. Non-struct types have no fields.
func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	rc.mu.RLock()
	cached, ok := rc.fieldCache[t]
	rc.mu.RUnlock()
	if ok {
		return cached
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := range t.NumField() {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			fields = append(fields, FieldInfo{
				Name:      field.Name,
				Index:     i,
				Embedded:  field.Anonymous,
				IsPointer: field.Type.Kind() == reflect.Ptr,
			})
		}
	}

	rc.fieldCache[t] = fields
	return fields
}

// FieldLine is one rendered line of a component dump.
type FieldLine struct {
	Depth int
	Text  string
}

// Describe flattens a component into "name: value" lines. Embedded structs
// are expanded one level deeper; everything else is printed with %v.
func (rc *ReflectionCache) Describe(component any) []FieldLine {
	val := reflect.ValueOf(component)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return []FieldLine{{Text: fmt.Sprintf("%v", val.Interface())}}
	}
	return rc.describe(val, 0, nil)
}

func (rc *ReflectionCache) describe(val reflect.Value, depth int, out []FieldLine) []FieldLine {
	for _, field := range rc.GetFields(val.Type()) {
		fv := val.Field(field.Index)
		if field.IsPointer {
			if fv.IsNil() {
				out = append(out, FieldLine{depth, field.Name + ": nil"})
				continue
			}
			fv = fv.Elem()
		}
		if field.Embedded && fv.Kind() == reflect.Struct {
			out = append(out, FieldLine{depth, field.Name})
			out = rc.describe(fv, depth+1, out)
			continue
		}
		out = append(out, FieldLine{depth, fmt.Sprintf("%s: %v", field.Name, fv.Interface())})
	}
	return out
}

var globalReflectionCache = NewReflectionCache()
