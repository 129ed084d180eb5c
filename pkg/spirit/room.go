package spirit

// DefaultRoom returns the built-in catalog: twelve spirits hidden in a
// quiet evening room. Scene coordinates span a 100x60 space.
func DefaultRoom() []*Spirit {
	return []*Spirit{
		{
			ID:              "hearth_ember",
			Name:            "ember",
			Region:          Rect{X: 6, Y: 38, W: 16, H: 14},
			AccentPrimary:   "#e25822",
			AccentSecondary: "#f9a03f",
			Icon:            "🔥",
			FragmentSlot:    0,
			Quest: QuestSpec{
				Kind:    KindCalibration,
				BandMin: 0.42,
				BandMax: 0.62,
				Feedback: map[string]string{
					"below":  "Ember shivers. \"Colder than a forgotten cup of tea. A little more, please.\"",
					"above":  "Ember flinches back. \"Whoa! I'm a glow, not a bonfire. Ease it down.\"",
					"within": "Ember settles into the coals with a contented crackle. \"There. Perfect.\"",
					"reset":  "Ember breathes out. The coals return to their patient middle glow.",
				},
			},
			Script: Script{
				Intro: []string{
					"A small face flickers among the coals. \"Oh! You can see me?\"",
					"\"I'm Ember. I keep this room warm, but lately the fire won't sit right.\"",
					"\"Too low and I doze off. Too high and I singe the kettle. Could you find my glow?\"",
				},
				After: []string{
					"Ember hums in the grate, perfectly banked. \"Warmest spot in the house. You made it so.\"",
				},
				Filler: []string{
					"Ember pops a spark and watches it rise. \"No rush. Fires are patient things.\"",
				},
			},
		},
		{
			ID:              "teapot_wisp",
			Name:            "Madame Oolong",
			Region:          Rect{X: 28, Y: 30, W: 10, H: 8},
			AccentPrimary:   "#7b9e89",
			AccentSecondary: "#d9c8ae",
			Icon:            "🫖",
			FragmentSlot:    1,
			Quest: QuestSpec{
				Kind:    KindCalibration,
				BandMin: 0.48,
				BandMax: 0.68,
				Feedback: map[string]string{
					"below":  "\"Lukewarm!\" Madame Oolong is scandalized. \"This steep wouldn't wake a leaf.\"",
					"above":  "\"Scalded! You'll bruise the blend. Gently now, gently.\"",
					"within": "Steam curls into a small applause. \"A proper steep at last. You have the gift.\"",
					"reset":  "\"Very well, we begin the pour again. Tea forgives everything but haste.\"",
				},
			},
			Script: Script{
				Intro: []string{
					"The teapot's steam gathers into a figure with an elaborate hat.",
					"\"Madame Oolong, resident of this pot for forty years of Tuesdays.\"",
					"\"No one here can manage a decent steep. Would you try? Mind the temperature.\"",
				},
				After: []string{
					"\"Ah, the steeper returns.\" The steam bows. \"The pot remembers a perfect cup.\"",
				},
				Filler: []string{
					"Madame Oolong recounts the great kettle whistle of some winter long past.",
				},
			},
		},
		{
			ID:              "lamp_moth",
			Name:            "Flicker",
			Region:          Rect{X: 44, Y: 10, W: 8, H: 10},
			AccentPrimary:   "#f5e6a8",
			AccentSecondary: "#b8a24f",
			Icon:            "🦋",
			FragmentSlot:    2,
			Quest: QuestSpec{
				Kind:           KindSteady,
				StreakMin:      10,
				ProgressTarget: 3,
				Feedback: map[string]string{
					"focus":           "You still your breath. The lamplight steadies a little.",
					"attempt_success": "Flicker lands on your finger for a heartbeat, wings calm. One more moment like that!",
					"attempt_fail":    "Flicker startles away from your hand. Too soon. Wait for the light to hold still.",
					"rest":            "You let your eyes rest on the lamp. Flicker traces slow loops in the glow.",
					"complete":        "Flicker settles on the lampshade at last, wings folded, utterly calm.",
				},
			},
			Script: Script{
				Intro: []string{
					"A moth made of lamplight circles the bulb, never quite landing.",
					"\"Can't stop,\" it whispers. \"The light jitters and so do I.\"",
					"\"If you could hold things steady, just for a few breaths, I might finally rest.\"",
				},
				After: []string{
					"Flicker dozes on the warm shade, dreaming whatever light dreams.",
				},
				Filler: []string{
					"Flicker spirals once around your head, leaving a faint trail of gold.",
				},
			},
		},
		{
			ID:              "shelf_mouse",
			Name:            "Margin",
			Region:          Rect{X: 72, Y: 8, W: 20, H: 24},
			AccentPrimary:   "#8d6e63",
			AccentSecondary: "#cbb6a0",
			Icon:            "🐭",
			FragmentSlot:    3,
			Quest: QuestSpec{
				Kind:        KindGathering,
				CountTarget: 2,
				Placements:  []string{"the worn novel", "the cloud atlas", "the thin book of poems"},
				Feedback: map[string]string{
					"placed":   "Margin pats the spine flush with tiny paws. \"Yes! That one lives right there.\"",
					"complete": "Margin surveys the shelf, whiskers trembling with pride. \"Order. Beautiful order.\"",
				},
			},
			Script: Script{
				Intro: []string{
					"Between two leaning books, a mouse in reading glasses peers out.",
					"\"Margin. Shelf librarian. We have a crisis: books out of place. Books! Out of place!\"",
					"\"Help me put a couple back where they belong and I'll owe you a story.\"",
				},
				After: []string{
					"Margin naps in a gap exactly one book wide, tail curled around a bookmark.",
				},
				Filler: []string{
					"Margin recites the opening line of a book that may not exist yet.",
				},
			},
		},
		{
			ID:              "window_frost",
			Name:            "Pane",
			Region:          Rect{X: 56, Y: 6, W: 12, H: 16},
			AccentPrimary:   "#bfe3f2",
			AccentSecondary: "#e8f7fb",
			Icon:            "❄",
			FragmentSlot:    4,
			Quest:           QuestSpec{Kind: KindDiscover},
			Script: Script{
				Intro: []string{
					"Frost ferns on the window shift, and for a moment they are a face.",
					"\"Most people look through me,\" says Pane. \"You looked at me. That's all I ever wanted.\"",
				},
				After: []string{
					"The frost ferns curl into a small wave as you pass the window.",
				},
			},
		},
		{
			ID:              "rug_tassel",
			Name:            "Fringe",
			Region:          Rect{X: 30, Y: 44, W: 28, H: 12},
			AccentPrimary:   "#a4453e",
			AccentSecondary: "#d8a47f",
			Icon:            "🧶",
			FragmentSlot:    5,
			Quest:           QuestSpec{Kind: KindDiscover},
			Script: Script{
				Intro: []string{
					"One corner of the rug flips itself over. A braided tassel sits up like a small dog.",
					"\"Fringe!\" it announces. \"Been under everyone's feet for years. You're the first to say hello.\"",
					"It wiggles, deeply pleased, and flops back down.",
				},
				After: []string{
					"The rug's corner wiggles whenever you walk near. Fringe never forgets a friend.",
				},
			},
		},
		{
			ID:              "clock_gnome",
			Name:            "Tock",
			Region:          Rect{X: 64, Y: 34, W: 8, H: 12},
			AccentPrimary:   "#6d597a",
			AccentSecondary: "#b8a9c9",
			Icon:            "🕰",
			FragmentSlot:    6,
			Quest: QuestSpec{
				Kind:           KindSteady,
				StreakMin:      10,
				ProgressTarget: 3,
				Feedback: map[string]string{
					"focus":           "You rest a hand on the clock case. The pendulum's wobble eases.",
					"attempt_success": "Tock nudges the pendulum at the exact right instant. \"HA! Clean swing!\"",
					"attempt_fail":    "The pendulum lurches. Tock glares. \"Not yet! Feel the rhythm first.\"",
					"rest":            "Tock leans on the minute hand, listening to the room breathe.",
					"complete":        "The clock's tick falls into a perfect, contented rhythm. Tock salutes.",
				},
			},
			Script: Script{
				Intro: []string{
					"Inside the clock case, a gnome wrestles the pendulum like a sailor with a sail.",
					"\"Name's Tock. This clock's been losing four minutes a day and my pride with it.\"",
					"\"Steady the swing with me. Timing's everything. Literally. It's a clock.\"",
				},
				After: []string{
					"Tock rides the pendulum like a swing, keeping immaculate time out of pure joy.",
				},
				Filler: []string{
					"Tock tells you what the clock saw at 3 a.m. once. You both agree not to repeat it.",
				},
			},
		},
		{
			ID:              "plant_sprout",
			Name:            "Verdie",
			Region:          Rect{X: 88, Y: 36, W: 10, H: 16},
			AccentPrimary:   "#5c8a4e",
			AccentSecondary: "#a9d18e",
			Icon:            "🌱",
			FragmentSlot:    7,
			Quest: QuestSpec{
				Kind:    KindCalibration,
				BandMin: 0.35,
				BandMax: 0.55,
				Feedback: map[string]string{
					"below":  "Verdie's leaves droop theatrically. \"Parched. Tragically, dramatically parched.\"",
					"above":  "Verdie gurgles. \"Glub. Too much! I'm a fern, not a frog pond.\"",
					"within": "Verdie stretches every leaf at once. \"Ahh. Exactly damp enough. Bliss.\"",
					"reset":  "\"Fine, we'll start the watering over. The soil forgets faster than I do.\"",
				},
			},
			Script: Script{
				Intro: []string{
					"The fern in the corner parts its fronds to reveal a sprout with crossed arms.",
					"\"Verdie. Underwatered Mondays, drowned Thursdays. Nobody gets it right.\"",
					"\"You look careful, though. Want to try? The soil should be damp, not soaked.\"",
				},
				After: []string{
					"Verdie glistens, perfectly watered, and insists you smell the soil. It smells like rain.",
				},
				Filler: []string{
					"Verdie gossips about the succulent on the sill. \"No ambition. None.\"",
				},
			},
		},
		{
			ID:              "musicbox_dancer",
			Name:            "Demi",
			Region:          Rect{X: 40, Y: 34, W: 8, H: 8},
			AccentPrimary:   "#c9a7c7",
			AccentSecondary: "#f3e3f1",
			Icon:            "🩰",
			FragmentSlot:    8,
			Quest:           QuestSpec{Kind: KindDiscover},
			Script: Script{
				Intro: []string{
					"The music box lid lifts a crack. The tiny dancer inside is looking right at you.",
					"\"I only ever dance for winders of the key,\" Demi says, \"but you found me without winding.\"",
					"She performs one perfect, silent pirouette, just for you.",
				},
				After: []string{
					"Whenever you glance at the music box, the lid opens a crack and Demi bows.",
				},
			},
		},
		{
			ID:              "mirror_shade",
			Name:            "Almost",
			Region:          Rect{X: 10, Y: 8, W: 10, H: 20},
			AccentPrimary:   "#8c9bab",
			AccentSecondary: "#d7dde4",
			Icon:            "🪞",
			FragmentSlot:    9,
			Quest:           QuestSpec{Kind: KindDiscover},
			Script: Script{
				Intro: []string{
					"In the mirror, your reflection is half a second late, and smiling first.",
					"\"I'm Almost,\" it says. \"I live in the moment just before you notice things.\"",
					"\"You noticed me anyway. Keep that. It's rarer than you think.\"",
				},
				After: []string{
					"Your reflection winks at you a half-second early now. You've decided to find it charming.",
				},
			},
		},
		{
			ID:              "candle_wick",
			Name:            "Taper",
			Region:          Rect{X: 22, Y: 32, W: 5, H: 8},
			AccentPrimary:   "#e8c878",
			AccentSecondary: "#fdf3d8",
			Icon:            "🕯",
			FragmentSlot:    10,
			Quest: QuestSpec{
				Kind:        KindGathering,
				CountTarget: 2,
				Placements:  []string{"a sprig of dried lavender", "a curl of orange peel", "a pinch of cinnamon"},
				Feedback: map[string]string{
					"placed":   "Taper's flame leans over the offering and sighs. \"Oh, that's lovely. More.\"",
					"complete": "The candle burns tall and fragrant. Taper glows like a tiny lighthouse.",
				},
			},
			Script: Script{
				Intro: []string{
					"The candle flame bends toward you, though there is no draft.",
					"\"Taper,\" the flame says. \"I've burned plain wax for months. No scent, no ceremony.\"",
					"\"Bring me a little something sweet to burn, and I'll light this room like a memory.\"",
				},
				After: []string{
					"The room smells faintly of lavender and orange. Taper burns steady and proud.",
				},
				Filler: []string{
					"Taper sways gently, humming a song only flames know.",
				},
			},
		},
		{
			ID:              "cushion_cat",
			Name:            "Plush",
			Region:          Rect{X: 60, Y: 46, W: 12, H: 10},
			AccentPrimary:   "#b0785c",
			AccentSecondary: "#e6cdb8",
			Icon:            "🐈",
			FragmentSlot:    11,
			Quest: QuestSpec{
				Kind:        KindGathering,
				CountTarget: 2,
				Placements:  []string{"the wool blanket", "the second cushion", "the knitted throw"},
				Feedback: map[string]string{
					"placed":   "Plush kneads the new addition with ghostly paws, purring like distant thunder.",
					"complete": "Plush melts into the nest you built and becomes, essentially, a liquid.",
				},
			},
			Script: Script{
				Intro: []string{
					"The cushion has been purring for five minutes. It is not your cat. You don't have a cat.",
					"A translucent cat un-flattens itself from the cushion and stretches enormously.",
					"\"Plush. Former house cat, current house spirit. This nap spot is insufficient. Fix it.\"",
				},
				After: []string{
					"A cushion-shaped warmth occupies the armchair. Sometimes it purrs when you sit nearby.",
				},
				Filler: []string{
					"Plush slow-blinks at you. In cat, this is a love letter.",
				},
			},
		},
	}
}
