package domain

// Field constants for mapstructure and JSON standardization.
const (
	// UserPathLeft is the OpenXR top-level user path for the left controller.
	UserPathLeft = "/user/hand/left"

	// UserPathRight is the OpenXR top-level user path for the right controller.
	UserPathRight = "/user/hand/right"

	// HandlerPrefix and HandlerSuffix frame the static handler identifier of an action.
	HandlerPrefix = "dispatch."
	HandlerSuffix = "_event_op"
)
