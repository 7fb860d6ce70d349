package catalog

// Exercises builds the static exercise library. Coverage mirrors the source
// reference data: not every subgroup carries every fitness level, which is
// what makes the generator's level fallback necessary.
func Exercises() ExerciseLibrary {
	return ExerciseLibrary{
		"Chest": {
			"Upper Chest": {
				LevelBeginner: {
					EquipmentBodyweight: {
						"Incline Push-ups",
						"Pike Push-ups",
						"Decline Diamond Push-ups",
						"Wall Push-ups (elevated)",
						"Band-Resisted Incline Push-ups",
					},
					EquipmentDumbbells: {
						"Incline Dumbbell Press",
						"Incline Dumbbell Flyes",
						"High-Incline Press",
						"Upper Chest Pullovers",
						"Single-Arm Incline Press",
					},
					EquipmentFullGym: {
						"Incline Bench Press",
						"Low-to-High Cable Flyes",
						"Smith Machine Incline Press",
						"Incline Machine Press",
						"Upper Chest Cable Press",
					},
				},
				LevelIntermediate: {
					EquipmentBodyweight: {
						"Weighted Incline Push-ups",
						"Pseudo Planche Push-ups",
						"Archer Push-ups (incline)",
						"Plyometric Incline Push-ups",
						"TRX Incline Press",
					},
					EquipmentDumbbells: {
						"Heavy Incline Dumbbell Press",
						"Heavy Incline Flyes",
						"Alternating Incline Press",
						"Incline Arnold Press",
						"Incline Twist Press",
					},
					EquipmentFullGym: {
						"Heavy Incline Bench Press",
						"Hammer Strength Incline",
						"Cable Upper Chest Flyes",
						"Incline Pin Press",
						"Incline Smith Machine Press",
					},
				},
				LevelAdvanced: {
					EquipmentBodyweight: {
						"Planche Push-up Progressions",
						"One-Arm Incline Push-ups",
						"Explosive Incline Push-ups",
						"Handstand Push-ups",
						"Weighted Vest Push-ups",
					},
					EquipmentDumbbells: {
						"Complex Incline Press Sets",
						"Drop Set Incline Flyes",
						"Tempo Incline Press",
						"Plyometric Incline Press",
						"Pre-Exhaust Supersets",
					},
					EquipmentFullGym: {
						"Weighted Dips (lean forward)",
						"Pause Rep Incline Press",
						"Incline Bench Drop Sets",
						"Chain-Loaded Incline Press",
						"1.5 Rep Technique",
					},
				},
			},
		},
		"Back": {
			"Lats": {
				LevelBeginner: {
					EquipmentBodyweight: {
						"Inverted Rows (horizontal)",
						"Negative Pull-ups (slow descent)",
						"Band-Assisted Pull-ups",
						"Scapular Pull-ups",
						"Australian Pull-ups",
					},
					EquipmentDumbbells: {
						"Single-Arm Rows (supported)",
						"Bent Over Rows (neutral grip)",
						"Renegade Rows",
						"Chest-Supported DB Rows",
						"DB Pullovers",
					},
					EquipmentFullGym: {
						"Lat Pulldowns (wide grip)",
						"Seated Cable Rows",
						"Machine Rows",
						"Straight Arm Pulldowns",
						"Assisted Pull-up Machine",
					},
				},
			},
		},
		"Shoulders": {
			"Anterior Deltoids": {
				LevelBeginner: {
					EquipmentBodyweight: {
						"Pike Push-ups (wall-supported)",
						"Wall Handstand Holds (30s)",
						"Incline Push-ups (shoulder focus)",
						"Band Front Raises",
						"Scapular Push-ups",
					},
					EquipmentDumbbells: {
						"Standing Front Raises",
						"Seated Arnold Press",
						"Single-Arm Press",
						"Half-Kneeling Press",
						"Z-Press",
					},
					EquipmentFullGym: {
						"Military Press (light)",
						"Smith Machine Press",
						"Cable Front Raises",
						"Machine Shoulder Press",
						"Landmine Press",
					},
				},
			},
		},
		"Arms": {
			"Biceps": {
				LevelBeginner: {
					EquipmentBodyweight: {
						"Chin-up Negatives",
						"Band Curls",
						"Inverted Curl Grip Rows",
						"Isometric Towel Curls",
					},
					EquipmentDumbbells: {
						"Standing DB Curls",
						"Hammer Curls",
						"Incline DB Curls",
						"Concentration Curls",
					},
					EquipmentFullGym: {
						"Cable Curls",
						"EZ-Bar Curls",
						"Preacher Curl Machine",
						"Rope Hammer Curls",
					},
				},
			},
			"Triceps": {
				LevelBeginner: {
					EquipmentBodyweight: {
						"Bench Dips",
						"Diamond Push-ups",
						"Close-Grip Push-ups",
						"Band Pushdowns",
					},
					EquipmentDumbbells: {
						"Overhead DB Extensions",
						"DB Kickbacks",
						"Lying DB Extensions",
						"Close-Grip DB Press",
					},
					EquipmentFullGym: {
						"Cable Pushdowns",
						"Overhead Cable Extensions",
						"Close-Grip Bench Press",
						"Triceps Dip Machine",
					},
				},
			},
		},
		"Legs": {
			"Quadriceps": {
				LevelBeginner: {
					EquipmentBodyweight: {
						"Bodyweight Squats",
						"Walking Lunges",
						"Step-ups",
						"Wall Sits",
						"Split Squats",
					},
					EquipmentDumbbells: {
						"Goblet Squats",
						"DB Front Squats",
						"DB Split Squats",
						"DB Lunges",
						"DB Bulgarian Split Squats",
					},
					EquipmentFullGym: {
						"Leg Press",
						"Leg Extensions",
						"Smith Machine Squats",
						"Hack Squats",
						"Sissy Squats",
					},
				},
				LevelIntermediate: {
					EquipmentBodyweight: {
						"Jump Squats",
						"Pistol Squat Progressions",
						"Jumping Lunges",
						"Shrimp Squats",
					},
					EquipmentDumbbells: {
						"Heavy Goblet Squats",
						"DB Front Rack Lunges",
						"Deficit Reverse Lunges",
						"Tempo DB Squats",
					},
					EquipmentFullGym: {
						"Barbell Back Squats",
						"Front Squats",
						"Heavy Leg Press",
						"Walking Barbell Lunges",
					},
				},
			},
			"Hamstrings": {
				LevelBeginner: {
					EquipmentBodyweight: {
						"Glute Bridges",
						"Single-Leg Glute Bridges",
						"Good Mornings (bodyweight)",
						"Sliding Leg Curls",
					},
					EquipmentDumbbells: {
						"DB Romanian Deadlifts",
						"Single-Leg DB RDLs",
						"DB Good Mornings",
						"DB Stiff-Leg Deadlifts",
					},
					EquipmentFullGym: {
						"Lying Leg Curls",
						"Seated Leg Curls",
						"Cable Pull-Throughs",
						"Romanian Deadlifts",
					},
				},
			},
		},
		"Core": {
			"Upper Abs": {
				LevelBeginner: {
					EquipmentBodyweight: {
						"Crunches",
						"Dead Bugs",
						"Plank Holds",
						"Mountain Climbers",
					},
					EquipmentDumbbells: {
						"Weighted Crunches",
						"DB Russian Twists",
						"DB Side Bends",
						"Weighted Sit-ups",
					},
					EquipmentFullGym: {
						"Cable Crunches",
						"Machine Crunches",
						"Hanging Knee Raises",
						"Ab Wheel Rollouts",
					},
				},
			},
		},
	}
}
