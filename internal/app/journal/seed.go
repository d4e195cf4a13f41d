package journal

import (
	"time"

	"github.com/Jodansky/mindtext-journal/internal/domain"
)

// seedEntries back the archive on first run and whenever the persisted
// set is missing or unreadable. Keywords are preset, so normalization
// keeps them instead of re-deriving.
func seedEntries() []domain.Entry {
	return []domain.Entry{
		{
			ID: "entry-1",
			UserText: "Woke up with a knot in my stomach about today's presentation. " +
				"Practiced my talking points but still felt jittery on the subway.",
			AssistantText: "You did the work ahead of time and that preparation is what people saw. " +
				"Notice how your nerves eased once you started speaking, your body remembered you could do it.",
			CreatedAt: time.Date(2024, time.May, 3, 8, 15, 0, 0, time.UTC),
			Keywords:  []string{"presentation", "anxiety", "confidence", "work"},
		},
		{
			ID: "entry-2",
			UserText: "Afternoon slump hit again so I took a walk around the block. " +
				"The sun and a podcast helped but I still felt scattered when I sat back down.",
			AssistantText: "Nice job giving your brain a reset. " +
				"Maybe experiment with a short to-do list for the second half of the day " +
				"so your mind knows what to focus on when you return.",
			CreatedAt: time.Date(2024, time.May, 3, 15, 42, 0, 0, time.UTC),
			Keywords:  []string{"energy", "routine", "focus", "work"},
		},
		{
			ID: "entry-3",
			UserText: "Had dinner with Maya and felt genuinely present. " +
				"Talked about creative projects and left feeling inspired to sketch again.",
			AssistantText: "Connections like that remind you how fueled you are by collaboration. " +
				"Capture even one sentence tonight about the sketch idea so it has somewhere to live.",
			CreatedAt: time.Date(2024, time.May, 4, 21, 5, 0, 0, time.UTC),
			Keywords:  []string{"friends", "creativity", "energy", "gratitude"},
		},
	}
}
