package catalog

// courseModules is the 13-week "Rebuild Your Focus" curriculum. Content is
// versioned with the binary; editing it is a release, not a data migration.
var courseModules = []Module{
	{
		ID:          1,
		Title:       "The Attention Audit",
		Description: "Measure where your attention actually goes before trying to change it.",
		Lesson: "Most people estimate their daily screen time at half its real value. " +
			"This week is purely observational: you instrument your days, collect a baseline, " +
			"and resist the urge to fix anything yet. A baseline you trust is the foundation " +
			"every later module builds on.",
		ReflectionQuestions: []string{
			"What surprised you most in your first three days of tracking?",
			"Which app or activity consumed more time than you expected, and what need was it meeting?",
		},
		QuizQuestions: []QuizQuestion{
			{
				Question:     "What is the goal of the first week?",
				Options:      []string{"Delete distracting apps", "Collect an honest baseline", "Set a screen-time limit", "Buy a dumbphone"},
				CorrectIndex: 1,
				Explanation:  "Interventions come later; week one is measurement only.",
			},
			{
				Question:     "Why shouldn't you change habits while auditing?",
				Options:      []string{"Change is impossible in one week", "Observation alters less when you commit to not intervening", "Apps forbid it", "It saves battery"},
				CorrectIndex: 1,
			},
			{
				Question:     "How do self-estimates of screen time compare to measured time?",
				Options:      []string{"They match closely", "They are usually about double", "They are usually about half", "Nobody has studied this"},
				CorrectIndex: 2,
			},
		},
		PracticalSteps: []string{
			"Install a time tracker on every device you use daily.",
			"Record context (mood, location, trigger) for your five longest sessions each day.",
			"Export your week-one numbers and keep them where you will see them again in week thirteen.",
		},
		Pitfalls: []string{
			"Performing for the tracker: behaving unusually well because you are being measured.",
			"Auditing only your phone while ignoring laptop and TV time.",
		},
		Exercises: []string{"Write a one-paragraph prediction of your totals before looking at the data."},
		Resources: []Resource{
			{Title: "How to run a personal time audit", URL: "https://example.com/attention-audit"},
		},
	},
	{
		ID:          2,
		Title:       "Triggers and Loops",
		Description: "Map the cue-routine-reward loops behind your most automatic checks.",
		Lesson: "Every compulsive check has a trigger: an emotion, a notification, a dead moment " +
			"in a queue. This week you name your top three loops precisely enough that you could " +
			"explain them to a stranger. Vague enemies are unbeatable; named ones are not.",
		ReflectionQuestions: []string{
			"Describe one complete loop you caught this week: cue, routine, reward.",
			"Which emotional state most reliably sends you to your phone?",
		},
		QuizQuestions: []QuizQuestion{
			{
				Question:     "What are the three parts of a habit loop?",
				Options:      []string{"Cue, routine, reward", "Trigger, guilt, repeat", "App, scroll, close", "Morning, noon, night"},
				CorrectIndex: 0,
			},
			{
				Question:     "Why name loops precisely?",
				Options:      []string{"To share them online", "Specific patterns can be interrupted; vague ones cannot", "Naming deletes the habit", "It is required by the app"},
				CorrectIndex: 1,
			},
			{
				Question:     "A 'dead moment' (elevator, queue) functions as what?",
				Options:      []string{"A reward", "A routine", "A cue", "A punishment"},
				CorrectIndex: 2,
				Explanation:  "Unstructured seconds are the most common cue for reflexive checks.",
			},
		},
		PracticalSteps: []string{
			"Keep a pocket log of every unprompted phone check for two days.",
			"For each of your top three loops, write the cue on a sticky note where it happens.",
		},
		Pitfalls: []string{"Logging only the checks you notice; the automatic ones are the point."},
	},
	{
		ID:          3,
		Title:       "Environment Design",
		Description: "Make the right behavior the lazy behavior.",
		Lesson: "Willpower is a budget; environment is a tax rate. Twenty seconds of friction " +
			"added to a distraction, or removed from a good habit, outperforms any amount of " +
			"resolve. This week you redesign your physical and digital spaces so defaults favor focus.",
		ReflectionQuestions: []string{
			"What single change to your phone's home screen had the biggest effect?",
			"Where in your home does deep work happen most easily, and why?",
		},
		QuizQuestions: []QuizQuestion{
			{
				Question:     "The 'twenty second rule' says you should:",
				Options:      []string{"Check your phone at most every 20 seconds", "Add ~20 seconds of friction to bad habits", "Meditate for 20 seconds", "Work in 20-second bursts"},
				CorrectIndex: 1,
			},
			{
				Question:     "Why is environment design more reliable than willpower?",
				Options:      []string{"It isn't", "Defaults act even when motivation is absent", "Willpower is a myth", "Environments never change"},
				CorrectIndex: 1,
			},
			{
				Question:     "Which is an example of reducing friction for a good habit?",
				Options:      []string{"Logging out of social apps", "Leaving your book on your pillow", "Deleting email", "Hiding your laptop"},
				CorrectIndex: 1,
			},
		},
		PracticalSteps: []string{
			"Move every attention-hungry app off your home screen into a folder on the last page.",
			"Log out of one feed-based site on your laptop so each visit costs a password entry.",
			"Set up one dedicated, single-purpose workspace, even if it is just a chair.",
		},
		Pitfalls: []string{
			"Designing a perfect environment once and never maintaining it.",
			"Adding so much friction you bypass the whole system in frustration.",
		},
		Exercises: []string{"Time how long it takes to reach your most-used app before and after the redesign."},
	},
	{
		ID:          4,
		Title:       "Single-Tasking",
		Description: "Retrain the habit of doing one thing at a time.",
		Lesson: "Task switching carries a residue: part of your attention stays with the previous " +
			"task for minutes after the switch. What feels like multitasking is rapid switching with " +
			"a toll paid each time. This week you practice closing loops one at a time.",
		ReflectionQuestions: []string{
			"During your longest single-task block this week, when did the urge to switch peak?",
			"What does attention residue feel like for you, concretely?",
		},
		QuizQuestions: []QuizQuestion{
			{
				Question:     "'Attention residue' refers to:",
				Options:      []string{"Eye strain from screens", "Attention lingering on a previous task after switching", "Dust on a monitor", "Memory loss"},
				CorrectIndex: 1,
			},
			{
				Question:     "Multitasking on cognitive work is best described as:",
				Options:      []string{"Parallel processing", "Rapid switching with a cost per switch", "A trainable superpower", "Harmless for short tasks"},
				CorrectIndex: 1,
			},
			{
				Question:     "A good first single-tasking practice is:",
				Options:      []string{"One browser tab per task block", "Two monitors", "Background TV", "Checking email every 5 minutes"},
				CorrectIndex: 0,
			},
		},
		PracticalSteps: []string{
			"Do three 25-minute blocks per day with exactly one tab or document open.",
			"Keep a 'later list' beside you; every intrusive task goes on paper, not into action.",
		},
		Pitfalls: []string{"Counting passive work (watching a render, waiting on builds) as single-tasking practice."},
	},
	{
		ID:          5,
		Title:       "Deep Work Blocks",
		Description: "Schedule and protect daily stretches of undistracted effort.",
		Lesson: "Depth is a scheduling decision before it is a discipline one. This week you put " +
			"deep work on the calendar like a meeting with someone you respect, start with ninety " +
			"minutes a day, and treat interruptions as calendar bugs to fix rather than moral failures.",
		ReflectionQuestions: []string{
			"What time of day did your best block happen, and what preceded it?",
			"Who or what interrupted you most, and what agreement could prevent it?",
		},
		QuizQuestions: []QuizQuestion{
			{
				Question:     "The recommended starting volume of deep work is:",
				Options:      []string{"Eight hours a day", "Ninety minutes a day", "Ten minutes a week", "Only weekends"},
				CorrectIndex: 1,
			},
			{
				Question:     "An interruption during a scheduled block should be treated as:",
				Options:      []string{"A personal failure", "Proof the method fails", "A scheduling bug to fix", "A welcome break"},
				CorrectIndex: 2,
			},
			{
				Question:     "Why schedule depth rather than wait for inspiration?",
				Options:      []string{"Inspiration is illegal", "Scheduled time shows up whether or not motivation does", "Calendars are fun", "It impresses coworkers"},
				CorrectIndex: 1,
			},
		},
		PracticalSteps: []string{
			"Block ninety minutes at your best energy time for the next five working days.",
			"Tell the people most likely to interrupt you when you are unavailable and when you are not.",
		},
		Pitfalls: []string{
			"Scheduling blocks at your worst energy hours and concluding deep work 'doesn't work'.",
		},
		Resources: []Resource{
			{Title: "Time-blocking basics", URL: "https://example.com/time-blocking"},
		},
	},
	{
		ID:          6,
		Title:       "The Boredom Muscle",
		Description: "Practice doing nothing so your brain stops demanding novelty every idle second.",
		Lesson: "If every wait is filled with a screen, your tolerance for stillness atrophies, and " +
			"with it the mind-wandering that produces your best ideas. This week you leave gaps empty " +
			"on purpose: queues, commutes, the first minutes after waking.",
		ReflectionQuestions: []string{
			"What thought or idea arrived during an intentionally empty moment this week?",
			"Which gap was hardest to leave unfilled?",
		},
		QuizQuestions: []QuizQuestion{
			{
				Question:     "Why practice boredom deliberately?",
				Options:      []string{"Boredom is virtuous suffering", "Tolerance for stillness supports sustained attention", "To annoy friends", "Screens cause blindness"},
				CorrectIndex: 1,
			},
			{
				Question:     "Mind-wandering time is associated with:",
				Options:      []string{"Wasted hours only", "Incubation of ideas and problem-solving", "Memory erasure", "Nothing measurable"},
				CorrectIndex: 1,
			},
			{
				Question:     "A good boredom rep is:",
				Options:      []string{"A queue without your phone", "A podcast at 2x", "Scrolling slowly", "Watching one ad"},
				CorrectIndex: 0,
			},
		},
		PracticalSteps: []string{
			"Pick two daily gaps (commute, kettle, queue) and keep them device-free all week.",
		},
		Pitfalls: []string{"Replacing the phone with an equally stimulating substitute and calling it stillness."},
	},
	{
		ID:          7,
		Title:       "Notification Zero",
		Description: "Move from interrupt-driven to schedule-driven communication.",
		Lesson: "Each notification is someone else's priority injected into your best hours. This " +
			"week you turn off everything that is not a human urgently needing you, and replace " +
			"push with two or three scheduled batch checks a day.",
		ReflectionQuestions: []string{
			"Which notification did you miss the least, and which genuinely needed to stay on?",
			"How did batch-checking change the tone of your replies?",
		},
		QuizQuestions: []QuizQuestion{
			{
				Question:     "The default policy this week for app notifications is:",
				Options:      []string{"All on, but silent", "Off unless a human urgently needs you", "On during work hours", "Decided per day"},
				CorrectIndex: 1,
			},
			{
				Question:     "Batching message checks mainly protects:",
				Options:      []string{"Battery life", "Contiguous attention during the rest of the day", "Data plans", "Screen glass"},
				CorrectIndex: 1,
			},
			{
				Question:     "What should replace push notifications?",
				Options:      []string{"Nothing, ever", "Scheduled batch checks", "A second phone", "Email forwarding"},
				CorrectIndex: 1,
			},
		},
		PracticalSteps: []string{
			"Audit the notification settings of every installed app; allow only direct human contact.",
			"Announce your new response windows to the three people who message you most.",
		},
		Pitfalls: []string{"Turning notifications off but checking manually every few minutes anyway."},
	},
	{
		ID:          8,
		Title:       "Digital Sabbath",
		Description: "Take one full day off screens and survive it.",
		Lesson: "A weekly day without discretionary screens is both a reset and a diagnostic: the " +
			"discomfort you feel by mid-morning is a map of your dependencies. Plan the day in " +
			"advance; emptiness invites relapse, while a planned analog day does not.",
		ReflectionQuestions: []string{
			"At what point in the day did the urge to check peak, and what did you do instead?",
			"What would make next week's sabbath easier than this one?",
		},
		QuizQuestions: []QuizQuestion{
			{
				Question:     "The key to a successful screen-free day is:",
				Options:      []string{"Pure willpower", "Planning the day's activities in advance", "Sleeping all day", "Hiding devices from yourself only"},
				CorrectIndex: 1,
			},
			{
				Question:     "Mid-morning discomfort during a sabbath is best read as:",
				Options:      []string{"A sign to stop the practice", "Information about your dependencies", "Low blood sugar", "A medical emergency"},
				CorrectIndex: 1,
			},
			{
				Question:     "Which use is typically still allowed on a digital sabbath?",
				Options:      []string{"Social feeds", "Maps to reach a friend", "Work email", "Short videos"},
				CorrectIndex: 1,
				Explanation:  "The sabbath targets discretionary use, not tools needed to be somewhere.",
			},
		},
		PracticalSteps: []string{
			"Choose your sabbath day now and write a loose plan: one outing, one meal with someone, one analog project.",
			"Charge your phone outside the bedroom the night before.",
		},
		Pitfalls: []string{"Scheduling the sabbath on a day you are on call."},
	},
	{
		ID:          9,
		Title:       "Reclaiming Reading",
		Description: "Rebuild the capacity to follow one argument for an hour.",
		Lesson: "Long-form reading is attention's strength training: a single voice, a sustained " +
			"argument, no branching links. If your last finished book is years behind you, start " +
			"with twenty minutes a day of paper reading and let the streak, not the page count, be the metric.",
		ReflectionQuestions: []string{
			"How many minutes could you read before the first urge to check something?",
			"What book did you choose and why?",
		},
		QuizQuestions: []QuizQuestion{
			{
				Question:     "The recommended metric for this week is:",
				Options:      []string{"Pages per hour", "Books finished", "Daily streak of reading sessions", "Words per minute"},
				CorrectIndex: 2,
			},
			{
				Question:     "Why prefer paper (or a dedicated e-reader) this week?",
				Options:      []string{"Ink smells nice", "No notifications or links to branch away on", "Paper is cheaper", "Screens cause headaches for everyone"},
				CorrectIndex: 1,
			},
			{
				Question:     "Long-form reading trains attention because it demands:",
				Options:      []string{"Speed", "Following one sustained argument", "Memorization", "Multitasking"},
				CorrectIndex: 1,
			},
		},
		PracticalSteps: []string{
			"Pick one book and put it where your phone used to charge.",
			"Read twenty minutes daily at the same hour; log only done/not-done.",
		},
		Pitfalls: []string{"Choosing an impressive book instead of an enjoyable one."},
	},
	{
		ID:          10,
		Title:       "Relationships Offline",
		Description: "Trade parasocial grazing for full-bandwidth human contact.",
		Lesson: "An hour of feeds delivers social snacking; an hour across a table delivers the " +
			"real nutrient. This week you convert scrolling time into presence: one unhurried " +
			"conversation, phones out of sight, and notice the difference in how you feel after.",
		ReflectionQuestions: []string{
			"Compare how you felt after an hour of feeds versus an hour of real conversation.",
			"Whose company did you under-invest in during your most-online months?",
		},
		QuizQuestions: []QuizQuestion{
			{
				Question:     "'Phubbing' means:",
				Options:      []string{"Phone clubbing", "Snubbing someone in favor of your phone", "A breathing exercise", "Posting photos of friends"},
				CorrectIndex: 1,
			},
			{
				Question:     "A phone visible on the table during conversation:",
				Options:      []string{"Has no measurable effect", "Lowers reported conversation quality even when untouched", "Improves safety", "Is required etiquette"},
				CorrectIndex: 1,
			},
			{
				Question:     "This week's core practice is:",
				Options:      []string{"More video calls", "One unhurried, device-free conversation", "Commenting more on friends' posts", "Group chats"},
				CorrectIndex: 1,
			},
		},
		PracticalSteps: []string{
			"Book one long walk or meal with someone this week; leave the phone in a bag, not a pocket.",
		},
		Pitfalls: []string{"Documenting the offline time for an online audience."},
	},
	{
		ID:          11,
		Title:       "Creation over Consumption",
		Description: "Shift your default from feeding on content to making things.",
		Lesson: "Consumption fills time; creation fills you. This week every consumption session " +
			"must be paid for in advance with a creation session, however small: a paragraph, a " +
			"sketch, a repaired shelf, twenty minutes of an instrument.",
		ReflectionQuestions: []string{
			"What did you make this week, and how did it feel next to an equivalent hour of consumption?",
			"What did you love making before infinite content arrived?",
		},
		QuizQuestions: []QuizQuestion{
			{
				Question:     "The rule for this week is:",
				Options:      []string{"No consumption at all", "Create before you consume", "Consume only educational content", "Create only on weekends"},
				CorrectIndex: 1,
			},
			{
				Question:     "Which counts as a creation session?",
				Options:      []string{"Watching a tutorial", "Twenty minutes of practicing an instrument", "Reading reviews of tools", "Planning to write"},
				CorrectIndex: 1,
			},
			{
				Question:     "Why do small creative acts matter?",
				Options:      []string{"They might go viral", "They rebuild identity as a maker, which outlasts any single session", "They are tax-deductible", "They don't"},
				CorrectIndex: 1,
			},
		},
		PracticalSteps: []string{
			"List three things you once made happily; pick one and schedule two sessions.",
		},
		Pitfalls: []string{"Preparing to create (buying supplies, watching tutorials) instead of creating."},
	},
	{
		ID:          12,
		Title:       "Relapse and Repair",
		Description: "Design your response to the inevitable bad week.",
		Lesson: "You will relapse: a stressful week, a new game, a doomscroll spiral. The skill " +
			"is not avoiding the slip but shortening it. This week you write your own repair " +
			"protocol: the signs that you've slipped, the first three recovery actions, and who you tell.",
		ReflectionQuestions: []string{
			"What are your three most reliable early-warning signs of a slide?",
			"Write the first sentence of your repair protocol.",
		},
		QuizQuestions: []QuizQuestion{
			{
				Question:     "The realistic goal regarding relapse is to:",
				Options:      []string{"Never slip again", "Shorten recovery time after a slip", "Hide slips from others", "Quit technology entirely"},
				CorrectIndex: 1,
			},
			{
				Question:     "An effective repair protocol is written:",
				Options:      []string{"During the relapse", "Before it, while you are steady", "By someone else", "Never; improvisation is better"},
				CorrectIndex: 1,
			},
			{
				Question:     "After a bad week, self-punishment tends to:",
				Options:      []string{"Speed recovery", "Extend the spiral by adding shame to the trigger pile", "Have no effect", "Work for everyone"},
				CorrectIndex: 1,
			},
		},
		PracticalSteps: []string{
			"Write your repair protocol on one card: signs, first three actions, one person to tell.",
			"Rehearse it once by simulating a bad evening.",
		},
		Pitfalls: []string{"Making the protocol so elaborate you won't run it on a bad day."},
	},
	{
		ID:          13,
		Title:       "Your Operating Manual",
		Description: "Consolidate twelve weeks of experiments into a personal system you will actually keep.",
		Lesson: "This final week you compare your current numbers to the week-one baseline, keep " +
			"the five practices that earned their place, and write the one-page operating manual " +
			"for your attention: schedules, rules, environments, and the repair protocol. The course " +
			"ends; the manual doesn't.",
		ReflectionQuestions: []string{
			"Which practices survived contact with your real life, and which quietly died?",
			"What does your week-thirteen data say next to week one?",
			"What is the first line of your operating manual?",
		},
		QuizQuestions: []QuizQuestion{
			{
				Question:     "The final deliverable of the course is:",
				Options:      []string{"A perfect streak", "A one-page personal operating manual", "Zero screen time", "A public pledge"},
				CorrectIndex: 1,
			},
			{
				Question:     "How many practices should you aim to carry forward?",
				Options:      []string{"All of them", "Roughly five that proved themselves", "Exactly one", "None; the course is the practice"},
				CorrectIndex: 1,
			},
			{
				Question:     "Comparing week 13 to week 1 requires:",
				Options:      []string{"Memory", "The baseline you saved in module one", "A new audit app", "A friend's data"},
				CorrectIndex: 1,
				Explanation:  "This is why module one insisted on keeping the exported baseline.",
			},
		},
		PracticalSteps: []string{
			"Re-run the week-one audit for three days and place the numbers side by side.",
			"Draft the manual, sleep on it, cut it to one page.",
		},
		Pitfalls: []string{"Writing an aspirational manual instead of one describing what you actually sustained."},
		Resources: []Resource{
			{Title: "Sample operating manuals", URL: "https://example.com/operating-manuals"},
		},
	},
}
