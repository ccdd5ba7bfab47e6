package events

const (
	// KindQuestionAsked identifies a newly applied current question.
	KindQuestionAsked Kind = "question.asked"
)

// QuestionAsked carries the question now presented to the candidate.
type QuestionAsked struct {
	Base
	Question   string
	AdvisorTip string
	Phase      string
	Topic      string
}

// NewQuestionAsked creates a question asked event.
func NewQuestionAsked(question, advisorTip, phase, topic string) QuestionAsked {
	return QuestionAsked{
		Base:       NewBase(KindQuestionAsked),
		Question:   question,
		AdvisorTip: advisorTip,
		Phase:      phase,
		Topic:      topic,
	}
}
