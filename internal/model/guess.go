package model

// Hint - подсказка игроку после его попытки
type Hint int

const (
	HintCorrect Hint = iota
	HintHigher
	HintLower
)

// Feedback - ответ игрока компьютеру
type Feedback string

const (
	FeedbackHigh    Feedback = "h" // догадка слишком большая
	FeedbackLow     Feedback = "l" // догадка слишком маленькая
	FeedbackCorrect Feedback = "c"
)
