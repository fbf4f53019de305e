package model

// Question is one quiz question with a single correct option
type Question struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	A        string `json:"a"`
	B        string `json:"b"`
	C        string `json:"c"`
	D        string `json:"d"`
	Correct  string `json:"correct"` // "a", "b", "c" or "d"
}

// View returns the question as shown to players, correct option withheld.
func (q Question) View() QuestionView {
	return QuestionView{
		ID:       q.ID,
		Question: q.Question,
		A:        q.A,
		B:        q.B,
		C:        q.C,
		D:        q.D,
	}
}

// QuestionView is the broadcast form of a question
type QuestionView struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	A        string `json:"a"`
	B        string `json:"b"`
	C        string `json:"c"`
	D        string `json:"d"`
}

// AnswerMessage is a player's answer submission, echoed back graded
type AnswerMessage struct {
	UserID     string `json:"userId"`
	GameID     string `json:"gameId"`
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
	IsCorrect  bool   `json:"isCorrect"`
}

// HelloMessage is the payload of a greeting request
type HelloMessage struct {
	Name string `json:"name"`
}

// Greeting is the broadcast reply to a HelloMessage
type Greeting struct {
	Content string `json:"content"`
}
