// Package quiz holds the financial literacy quiz and grades attempts.
package quiz

import "errors"

const FinancialName = "financial"

type Question struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	answer   int
}

var ErrAnswerCount = errors.New("answer count does not match question count")

// Financial is the fixed question set. Answers are option indexes.
var Financial = []Question{
	{
		ID:       1,
		Question: "What is compound interest?",
		Options: []string{
			"Interest earned only on the initial deposit",
			"Interest earned on both the initial deposit and previously earned interest",
			"A fixed interest rate that never changes",
			"Interest paid only at the end of a loan term",
		},
		answer: 1,
	},
	{
		ID:       2,
		Question: "Which of these is typically the safest form of investment?",
		Options:  []string{"Cryptocurrency", "Individual stocks", "Government bonds", "Penny stocks"},
		answer:   2,
	},
	{
		ID:       3,
		Question: "What is a credit score primarily used for?",
		Options: []string{
			"To determine your salary",
			"To evaluate your creditworthiness for loans and credit cards",
			"To calculate your tax returns",
			"To determine your insurance premiums",
		},
		answer: 1,
	},
	{
		ID:       4,
		Question: "What is the 50/30/20 budgeting rule?",
		Options: []string{
			"Save 50%, spend 30% on needs, 20% on wants",
			"50% on needs, 30% on wants, 20% on savings",
			"50% on wants, 30% on needs, 20% on savings",
			"50% on savings, 30% on needs, 20% on wants",
		},
		answer: 1,
	},
	{
		ID:       5,
		Question: "Which of these should you do first when starting to manage your finances?",
		Options:  []string{"Invest in stocks", "Create an emergency fund", "Apply for multiple credit cards", "Take out a personal loan"},
		answer:   1,
	},
}

type Result struct {
	Score   int    `json:"score"`
	Total   int    `json:"total"`
	Correct []bool `json:"correct"`
}

// Grade scores answers positionally against questions.
func Grade(questions []Question, answers []int) (Result, error) {
	if len(answers) != len(questions) {
		return Result{}, ErrAnswerCount
	}
	res := Result{Total: len(questions), Correct: make([]bool, len(questions))}
	for i, q := range questions {
		if answers[i] == q.answer {
			res.Correct[i] = true
			res.Score++
		}
	}
	return res, nil
}
