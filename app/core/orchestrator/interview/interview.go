// Package interview implements the per-session mock-interview state
// machine. Each session walks a randomly drawn question record's
// follow-ups one message at a time; the content of the user's message is
// deliberately ignored — any non-empty message advances the script.
package interview

import (
	"sync"

	"sahayak/app/pkg/types"
)

// Record pairs an opening question with its ordered follow-ups.
type Record struct {
	Question  string
	FollowUps []string
}

var questionBank = map[types.Language][]Record{
	types.LanguageEnglish: {
		{
			Question: "Tell me about yourself and your background.",
			FollowUps: []string{
				"What accomplishment from that time are you most proud of?",
				"What would your previous colleagues say about working with you?",
				"How has that experience prepared you for this role?",
			},
		},
		{
			Question: "Describe a challenging problem you solved recently.",
			FollowUps: []string{
				"What alternatives did you consider before settling on that approach?",
				"How did you measure whether your solution worked?",
				"What would you do differently if you faced it again?",
			},
		},
		{
			Question: "Why are you interested in this position?",
			FollowUps: []string{
				"What do you know about our work that excites you?",
				"Where do you see yourself in five years?",
				"What would make this role a success for you in the first ninety days?",
			},
		},
		{
			Question: "Tell me about a time you worked in a team under pressure.",
			FollowUps: []string{
				"How did you handle disagreements within the team?",
				"What was your specific contribution to the outcome?",
				"What did that experience teach you about collaboration?",
			},
		},
	},
	types.LanguageHindi: {
		{
			Question: "अपने बारे में और अपनी पृष्ठभूमि के बारे में बताइए।",
			FollowUps: []string{
				"उस समय की किस उपलब्धि पर आपको सबसे अधिक गर्व है?",
				"आपके पिछले सहकर्मी आपके साथ काम करने के बारे में क्या कहेंगे?",
				"उस अनुभव ने आपको इस भूमिका के लिए कैसे तैयार किया है?",
			},
		},
		{
			Question: "हाल ही में हल की गई किसी कठिन समस्या के बारे में बताइए।",
			FollowUps: []string{
				"उस समाधान से पहले आपने किन विकल्पों पर विचार किया?",
				"आपने कैसे मापा कि आपका समाधान काम कर रहा है?",
				"अगर वही समस्या फिर आए तो आप क्या अलग करेंगे?",
			},
		},
		{
			Question: "आप इस पद में क्यों रुचि रखते हैं?",
			FollowUps: []string{
				"हमारे काम के बारे में ऐसा क्या है जो आपको उत्साहित करता है?",
				"आप पांच साल बाद खुद को कहां देखते हैं?",
				"पहले नब्बे दिनों में इस भूमिका में सफलता आपके लिए क्या होगी?",
			},
		},
		{
			Question: "दबाव में टीम के साथ काम करने के किसी अनुभव के बारे में बताइए।",
			FollowUps: []string{
				"टीम के भीतर असहमति को आपने कैसे संभाला?",
				"परिणाम में आपका विशिष्ट योगदान क्या था?",
				"उस अनुभव ने आपको सहयोग के बारे में क्या सिखाया?",
			},
		},
	},
}

// Rand is the injected randomness source for question selection.
type Rand interface {
	Intn(n int) int
}

type session struct {
	currentQuestion string
	followUps       []string
	followUpIndex   int
	started         bool
}

// Manager keys interview state by session id. Concurrent sessions never
// share question or index state.
type Manager struct {
	mu       sync.Mutex
	rng      Rand
	sessions map[string]*session
}

func NewManager(rng Rand) *Manager {
	return &Manager{
		rng:      rng,
		sessions: make(map[string]*session),
	}
}

// Next advances the session's interview script and returns the text for
// this turn. A session's very first turn draws a random question record
// and immediately consumes its first follow-up; the opening question
// itself is skipped. This mirrors the reference behavior and is kept
// intentionally — see the record in DESIGN.md.
func (m *Manager) Next(sessionID string, lang types.Language, message string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.sessions[sessionID]
	if !ok {
		record := m.drawLocked(lang)
		st = &session{
			currentQuestion: record.Question,
			followUps:       record.FollowUps,
		}
		m.sessions[sessionID] = st
	}

	if !st.started || len(message) > 0 {
		st.started = true
		if st.followUpIndex < len(st.followUps) {
			followUp := st.followUps[st.followUpIndex]
			st.followUpIndex++
			return followUp
		}
		record := m.drawLocked(lang)
		st.currentQuestion = record.Question
		st.followUps = record.FollowUps
		st.followUpIndex = 0
		return st.currentQuestion
	}

	return st.currentQuestion
}

// End discards the session's interview state. Channels call this on
// disconnect so state never leaks into a later session reusing the key.
func (m *Manager) End(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}

// ActiveSessions reports how many sessions currently hold interview state.
func (m *Manager) ActiveSessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) drawLocked(lang types.Language) Record {
	bank, ok := questionBank[lang]
	if !ok {
		bank = questionBank[types.LanguageEnglish]
	}
	return bank[m.rng.Intn(len(bank))]
}

// Bank exposes the fixed question records for a language.
func Bank(lang types.Language) []Record {
	if bank, ok := questionBank[lang]; ok {
		return bank
	}
	return questionBank[types.LanguageEnglish]
}
