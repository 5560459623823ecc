package config

func numPtr(f float64) *float64 { return &f }

// DefaultRegistry returns the built-in page template used when no user
// template exists. It matches the datapoints the bridge simulator seeds, so
// a fresh checkout works end to end.
func DefaultRegistry() *Registry {
	return &Registry{
		Version:  1,
		RootPage: "home",
		Pages: map[string]*Page{
			"home": {
				Title: "MCDU MENU",
				Lines: [6]Line{
					{
						Left: HalfLine{
							Button:  ButtonField{Type: ButtonNavigation, Target: "cabin"},
							Display: DisplayField{Type: DisplayText, Label: "CABIN", Source: ""},
						},
					},
					{
						Left: HalfLine{
							Button:  ButtonField{Type: ButtonNavigation, Target: "system"},
							Display: DisplayField{Type: DisplayText, Label: "SYSTEM"},
						},
					},
				},
			},
			"cabin": {
				Title:  "CABIN",
				Parent: "home",
				Lines: [6]Line{
					{
						Left: HalfLine{
							Display: DisplayField{
								Type:   DisplayDatapoint,
								Label:  "TEMP SETPOINT",
								Source: "cabin.temp.setpoint",
								Rule:   &FieldRule{InputType: "numeric"},
							},
						},
						Right: HalfLine{
							Display: DisplayField{
								Type:   DisplayDatapoint,
								Label:  "TEMP ACTUAL",
								Source: "cabin.temp.actual",
							},
						},
					},
					{
						Left: HalfLine{
							Display: DisplayField{
								Type:   DisplayDatapoint,
								Label:  "LIGHTS",
								Source: "cabin.lights.main",
							},
						},
						Right: HalfLine{
							Display: DisplayField{
								Type:   DisplayDatapoint,
								Label:  "FAN",
								Source: "cabin.fan.enabled",
							},
						},
					},
					{
						Left: HalfLine{
							Display: DisplayField{
								Type:   DisplayDatapoint,
								Label:  "FAN SPEED",
								Source: "cabin.fan.speed",
								Rule: &FieldRule{
									InputType: "numeric",
									Step:      numPtr(10),
								},
							},
						},
					},
					{
						Left: HalfLine{
							Display: DisplayField{
								Type:   DisplayDatapoint,
								Label:  "WAKE TIME",
								Source: "cabin.wake.time",
								Rule:   &FieldRule{InputType: "time"},
							},
						},
					},
				},
			},
			"system": {
				Title:  "SYSTEM",
				Parent: "home",
				Lines: [6]Line{
					{
						Left: HalfLine{
							Display: DisplayField{
								Type:   DisplayDatapoint,
								Label:  "SERIAL",
								Source: "system.serial",
							},
						},
					},
					{
						Left: HalfLine{
							Display: DisplayField{
								Type:   DisplayDatapoint,
								Label:  "LABEL",
								Source: "system.label",
								Rule:   &FieldRule{MaxLength: 16},
							},
						},
					},
					{
						Left: HalfLine{
							Button: ButtonField{
								Type:   ButtonDatapoint,
								Target: "system.reboot",
								Confirm: &ConfirmPolicy{
									Type:    ConfirmHard,
									Title:   "REBOOT BRIDGE",
									Warning: "TERMINALS WILL DROP",
									Details: []string{
										"All connected terminals lose their session until the bridge is back up.",
									},
								},
							},
							Display: DisplayField{Type: DisplayText, Label: "REBOOT BRIDGE"},
						},
					},
				},
			},
		},
	}
}
