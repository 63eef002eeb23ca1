package reaction

import "timeline-service/internal/user"

// Summary is one emoji badge on a target. Users keep first-reaction order so
// the UI can show "who reacted first".
type Summary struct {
	Emoji string     `json:"emoji"`
	Count int        `json:"count"`
	Users []user.Ref `json:"users"`
}

// Summarize tallies reactions per emoji. Records must be supplied in
// ascending creation order; badges come out in first-emoji-seen order, not
// alphabetical and not by count. Callers render them in arrival order.
func Summarize(records []Reaction) []Summary {
	var order []string
	byEmoji := make(map[string]*Summary)
	for _, r := range records {
		s, ok := byEmoji[r.Emoji]
		if !ok {
			s = &Summary{Emoji: r.Emoji}
			byEmoji[r.Emoji] = s
			order = append(order, r.Emoji)
		}
		s.Count++
		var ref user.Ref
		if r.User != nil {
			ref = r.User.Ref()
		} else {
			ref = user.Ref{ID: r.UserID}
		}
		s.Users = append(s.Users, ref)
	}

	out := make([]Summary, 0, len(order))
	for _, emoji := range order {
		out = append(out, *byEmoji[emoji])
	}
	return out
}

// SummarizeByTarget groups records by target id, then applies the same
// per-emoji tally within each group. Input ordering rules match Summarize.
func SummarizeByTarget(records []Reaction) map[string][]Summary {
	grouped := make(map[string][]Reaction)
	for _, r := range records {
		grouped[r.TargetID] = append(grouped[r.TargetID], r)
	}

	out := make(map[string][]Summary, len(grouped))
	for targetID, group := range grouped {
		out[targetID] = Summarize(group)
	}
	return out
}
