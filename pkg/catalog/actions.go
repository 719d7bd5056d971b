package catalog

import "github.com/aretw0/xrinput/pkg/domain"

// ActionSetName is the reserved name of the action set owned by this package.
const ActionSetName = "bl_controller_actionset"

var (
	leftOnly  = []domain.Hand{domain.HandLeft}
	rightOnly = []domain.Hand{domain.HandRight}
)

func continuous(name, binding string, hands []domain.Hand) domain.ActionSpec {
	return domain.ActionSpec{Name: name, BindingName: binding, Hands: hands, Kind: domain.KindContinuous}
}

// defaultActions is the hard-coded action table, in registration order.
var defaultActions = []domain.ActionSpec{
	{Name: "controller_grip", BindingName: "GRIP_POSE", Hands: domain.BothHands, Kind: domain.KindPose, Pose: domain.PoseGrip},
	{Name: "controller_aim", BindingName: "AIM_POSE", Hands: domain.BothHands, Kind: domain.KindPose, Pose: domain.PoseAim},
	{Name: "haptic", BindingName: "HAPTIC", Hands: domain.BothHands, Kind: domain.KindVibration},

	continuous("trigger", "TRIGGER", domain.BothHands),
	continuous("squeeze", "SQUEEZE", domain.BothHands),

	continuous("joystick_x_lefthand", "JOYSTICK_X", leftOnly),
	continuous("joystick_y_lefthand", "JOYSTICK_Y", leftOnly),
	continuous("joystick_x_righthand", "JOYSTICK_X", rightOnly),
	continuous("joystick_y_righthand", "JOYSTICK_Y", rightOnly),

	continuous("button_a_lefthand", "BUTTON_A_LEFTHAND", leftOnly),
	continuous("button_b_lefthand", "BUTTON_B_LEFTHAND", leftOnly),
	continuous("button_a_righthand", "BUTTON_A_RIGHTHAND", rightOnly),
	continuous("button_b_righthand", "BUTTON_B_RIGHTHAND", rightOnly),

	continuous("button_a_touch_lefthand", "BUTTON_A_TOUCH_LEFTHAND", leftOnly),
	continuous("button_b_touch_lefthand", "BUTTON_B_TOUCH_LEFTHAND", leftOnly),
	continuous("button_a_touch_righthand", "BUTTON_A_TOUCH_RIGHTHAND", rightOnly),
	continuous("button_b_touch_righthand", "BUTTON_B_TOUCH_RIGHTHAND", rightOnly),
}
