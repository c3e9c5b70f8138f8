package ecs

// System is one step of the frame. Query and Singleton fields of a registered
// system are initialised by the Scheduler; other fields persist across frames.
type System interface {
	Execute(frame *UpdateFrame)
}
