package catalog

import (
	"sort"

	"github.com/aretw0/xrinput/pkg/domain"
)

// Profile is an OpenXR interaction profile the catalog knows how to bind.
type Profile struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

// Profiles lists the supported interaction profiles in binding order.
var Profiles = []Profile{
	{ID: "oculus", Path: "/interaction_profiles/oculus/touch_controller"},
	{ID: "index", Path: "/interaction_profiles/valve/index_controller"},
	{ID: "vive", Path: "/interaction_profiles/htc/vive_controller"},
	{ID: "wmr", Path: "/interaction_profiles/microsoft/motion_controller"},
	{ID: "reverb_g2", Path: "/interaction_profiles/hp/mixed_reality_controller"},
	{ID: "simple", Path: "/interaction_profiles/khr/simple_controller"},
}

// components maps binding_name -> profile ID -> component path.
// A profile missing from an inner map has no control for that binding.
var components = map[string]map[string]string{
	"GRIP_POSE": everyProfile("/input/grip/pose"),
	"AIM_POSE":  everyProfile("/input/aim/pose"),
	"HAPTIC":    everyProfile("/output/haptic"),
	"TRIGGER": {
		"oculus":    "/input/trigger/value",
		"index":     "/input/trigger/value",
		"vive":      "/input/trigger/value",
		"wmr":       "/input/trigger/value",
		"reverb_g2": "/input/trigger/value",
		"simple":    "/input/select/click",
	},
	"SQUEEZE": {
		"oculus":    "/input/squeeze/value",
		"index":     "/input/squeeze/force",
		"vive":      "/input/squeeze/click",
		"wmr":       "/input/squeeze/click",
		"reverb_g2": "/input/squeeze/value",
	},
	"JOYSTICK_X": {
		"oculus":    "/input/thumbstick/x",
		"index":     "/input/thumbstick/x",
		"vive":      "/input/trackpad/x",
		"wmr":       "/input/thumbstick/x",
		"reverb_g2": "/input/thumbstick/x",
	},
	"JOYSTICK_Y": {
		"oculus":    "/input/thumbstick/y",
		"index":     "/input/thumbstick/y",
		"vive":      "/input/trackpad/y",
		"wmr":       "/input/thumbstick/y",
		"reverb_g2": "/input/thumbstick/y",
	},
	"BUTTON_A_LEFTHAND":        {"oculus": "/input/x/click", "index": "/input/a/click", "reverb_g2": "/input/x/click"},
	"BUTTON_B_LEFTHAND":        {"oculus": "/input/y/click", "index": "/input/b/click", "reverb_g2": "/input/y/click"},
	"BUTTON_A_RIGHTHAND":       {"oculus": "/input/a/click", "index": "/input/a/click", "reverb_g2": "/input/a/click"},
	"BUTTON_B_RIGHTHAND":       {"oculus": "/input/b/click", "index": "/input/b/click", "reverb_g2": "/input/b/click"},
	"BUTTON_A_TOUCH_LEFTHAND":  {"oculus": "/input/x/touch", "index": "/input/a/touch"},
	"BUTTON_B_TOUCH_LEFTHAND":  {"oculus": "/input/y/touch", "index": "/input/b/touch"},
	"BUTTON_A_TOUCH_RIGHTHAND": {"oculus": "/input/a/touch", "index": "/input/a/touch"},
	"BUTTON_B_TOUCH_RIGHTHAND": {"oculus": "/input/b/touch", "index": "/input/b/touch"},
}

func everyProfile(component string) map[string]string {
	m := make(map[string]string, len(Profiles))
	for _, p := range Profiles {
		m[p.ID] = component
	}
	return m
}

// ProfileBindings returns one binding record per interaction profile that has a control
// for bindingName, for the given hand. Action is left empty for the caller to fill.
func ProfileBindings(bindingName string, hand domain.Hand) []domain.BindingRecord {
	byProfile := components[bindingName]
	out := make([]domain.BindingRecord, 0, len(byProfile))
	for _, p := range Profiles {
		component, ok := byProfile[p.ID]
		if !ok {
			continue
		}
		out = append(out, domain.BindingRecord{
			BindingName: bindingName,
			Hand:        hand,
			Profile:     p.ID,
			Path:        hand.UserPath() + component,
		})
	}
	return out
}

// BindingNames returns every binding name with a physical mapping, sorted.
func BindingNames() []string {
	names := make([]string, 0, len(components))
	for k := range components {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// KnownProfile reports whether id names a supported interaction profile.
func KnownProfile(id string) bool {
	for _, p := range Profiles {
		if p.ID == id {
			return true
		}
	}
	return false
}
