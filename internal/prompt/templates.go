package prompt

import "strings"

// Templates maps a category to its instruction text. A Templates value is
// never mutated after construction; WithOverrides returns a new one.
type Templates struct {
	byCategory map[Category]string
}

// DefaultTemplates returns the built-in instruction for every category.
func DefaultTemplates() Templates {
	m := make(map[Category]string, len(defaultTemplates))
	for c, text := range defaultTemplates {
		m[c] = text
	}
	return Templates{byCategory: m}
}

// WithOverrides returns a copy of t with the given entries replaced or added.
// Keys are parsed with ParseCategory, so slugs work.
func (t Templates) WithOverrides(overrides map[string]string) Templates {
	m := make(map[Category]string, len(t.byCategory)+len(overrides))
	for c, text := range t.byCategory {
		m[c] = text
	}
	for key, text := range overrides {
		if strings.TrimSpace(text) == "" {
			continue
		}
		m[ParseCategory(key)] = strings.TrimSpace(text)
	}
	return Templates{byCategory: m}
}

// Lookup returns the instruction for c.
func (t Templates) Lookup(c Category) (string, bool) {
	text, ok := t.byCategory[c]
	return text, ok
}

var defaultTemplates = map[Category]string{
	MeetingRecording: `You are given a transcript from a meeting. Please provide a detailed summary of the discussion, including:
1. The main topic or subject of the meeting.
2. Key points and decisions made.
3. Action items or next steps.
4. The tone of the discussion (e.g., formal, casual, urgent).
5. Participant interactions and engagement levels.
6. Any challenges or disagreements discussed.
7. Follow-up tasks or deadlines mentioned.`,

	Song: `You are given a transcript from a song. Please provide a detailed summary, including:
1. The main theme or message of the song.
2. The emotional tone and mood (e.g., happy, sad, romantic, angry).
3. The names of the singers, artists, or bands if mentioned.
4. Notable lyrics or phrases and their significance.
5. Musical style, genre, or instrumentation mentioned.
6. Cultural or historical context if relevant.
7. The overall impact or message of the song.`,

	Lecture: `You are given a transcript from an educational lecture. Please provide a detailed summary, including:
1. The main subject and key concepts covered.
2. Important definitions, theories, or principles explained.
3. Examples, case studies, or illustrations used.
4. Key takeaways and learning points.
5. Any assignments, exercises, or recommended further reading.
6. The tone and teaching style of the lecturer (e.g., engaging, formal, interactive).
7. Questions asked by students and answers provided.`,

	Podcast: `You are given a transcript from a podcast. Please provide a detailed summary, including:
1. The main topic and theme of the episode.
2. Key discussions, insights, or arguments shared.
3. Guest speakers and their contributions or expertise.
4. Notable quotes or memorable moments.
5. Resources, books, or references mentioned.
6. The tone and style of the podcast (e.g., conversational, informative, humorous).
7. Key takeaways or calls to action for the audience.`,

	Interview: `You are given a transcript from an interview. Please provide a detailed summary, including:
1. The background of the interviewee and interviewer.
2. Main topics or themes discussed.
3. Key insights, experiences, or stories shared.
4. Notable quotes or memorable moments.
5. Professional achievements or projects mentioned.
6. The tone and style of the interview (e.g., formal, casual, confrontational).
7. Future plans, goals, or advice shared by the interviewee.`,

	Audiobook: `You are given a transcript from an audiobook. Please provide a detailed summary, including:
1. The genre and style of the book (e.g., fiction, non-fiction, self-help).
2. Main plot points or key concepts covered.
3. Character descriptions or important figures.
4. Notable quotes or passages and their significance.
5. Themes, motifs, or underlying messages.
6. The tone and narration style (e.g., dramatic, conversational).
7. The overall impact or message of the book.`,

	VoiceMemo: `You are given a transcript from a voice memo. Please provide a detailed summary, including:
1. The main purpose or subject of the memo.
2. Key points, instructions, or reminders.
3. Time-sensitive information or deadlines.
4. Follow-up tasks or action items.
5. Context or background information.
6. The tone and urgency of the memo (e.g., urgent, casual, formal).
7. Any additional details or clarifications provided.`,

	ConferenceTalk: `You are given a transcript from a conference talk. Please provide a detailed summary, including:
1. The main topic and field of discussion.
2. Key innovations, findings, or ideas presented.
3. Methodologies, approaches, or frameworks discussed.
4. The impact and implications of the work.
5. Questions from the audience and answers provided.
6. The tone and style of the presentation (e.g., technical, inspirational).
7. Key takeaways or recommendations for the audience.`,
}
