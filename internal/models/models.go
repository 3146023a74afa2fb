package models

type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Email        string    `db:"email" json:"email"`
	Degree       string    `db:"degree" json:"degree"`
	Goal         string    `db:"goal" json:"goal"`
	CreatedAt    Timestamp `db:"created_at" json:"created_at"`
}

// Goal values accepted at signup and profile edit.
const (
	GoalAcademic     = "academic"
	GoalAcademicPlus = "academic-plus"
	GoalAllRound     = "all-round"
)

type GratitudeEntry struct {
	ID         int64     `db:"id" json:"id"`
	UserID     int64     `db:"user_id" json:"user_id"`
	EntryDate  string    `db:"entry_date" json:"entry_date"`
	Gratitude1 string    `db:"gratitude_1" json:"gratitude_1"` // sealed when encryption is enabled
	Gratitude2 string    `db:"gratitude_2" json:"gratitude_2"`
	Gratitude3 string    `db:"gratitude_3" json:"gratitude_3"`
	CreatedAt  Timestamp `db:"created_at" json:"created_at"`
}

type MoodEntry struct {
	ID                int64     `db:"id" json:"id"`
	UserID            int64     `db:"user_id" json:"user_id"`
	EntryDate         string    `db:"entry_date" json:"entry_date"`
	MoodScale         int       `db:"mood_scale" json:"mood_scale"`
	PrimaryEmotion    string    `db:"primary_emotion" json:"primary_emotion"`
	SecondaryEmotions string    `db:"secondary_emotions" json:"secondary_emotions"`
	Factors           string    `db:"factors" json:"factors"`
	Reflection        string    `db:"reflection" json:"reflection"` // sealed when encryption is enabled
	CreatedAt         Timestamp `db:"created_at" json:"created_at"`
}

type SleepLog struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Date      string    `db:"date" json:"date"`
	Hours     float64   `db:"hours_slept" json:"hours"`
	Quality   string    `db:"sleep_quality" json:"quality"`
	CreatedAt Timestamp `db:"created_at" json:"created_at"`
}

// Sleep quality values.
const (
	SleepPoor      = "Poor"
	SleepFair      = "Fair"
	SleepGood      = "Good"
	SleepExcellent = "Excellent"
)

type WaterLog struct {
	ID         int64     `db:"id" json:"id"`
	UserID     int64     `db:"user_id" json:"user_id"`
	Date       string    `db:"date" json:"date"`
	AmountML   int       `db:"amount_ml" json:"amount"`
	TimeLogged Timestamp `db:"time_logged" json:"time"`
}

type HygieneLog struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Date      string    `db:"date" json:"date"`
	Bathed    bool      `db:"bathed" json:"bathed"`
	CreatedAt Timestamp `db:"created_at" json:"created_at"`
}

type MeditationLog struct {
	ID              int64     `db:"id" json:"id"`
	UserID          int64     `db:"user_id" json:"user_id"`
	Date            string    `db:"date" json:"date"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	Completed       bool      `db:"completed" json:"completed"`
	Notes           string    `db:"notes" json:"notes"`
	CreatedAt       Timestamp `db:"created_at" json:"created_at"`
}

// EducationPreference is one snapshot in a user's preference history.
type EducationPreference struct {
	ID              int64     `db:"id" json:"id"`
	UserID          int64     `db:"user_id" json:"user_id"`
	CurrentField    string    `db:"current_field" json:"current_field"`
	PreferredDomain string    `db:"preferred_domain" json:"preferred_domain"`
	CreatedAt       Timestamp `db:"created_at" json:"created_at"`
}

type HobbyPreference struct {
	ID                  int64      `db:"id" json:"id"`
	UserID              int64      `db:"user_id" json:"user_id"`
	PreferredCategories StringList `db:"preferred_categories" json:"preferred_categories"`
	TimeAvailable       string     `db:"time_available" json:"time_available"`
	SkillLevel          string     `db:"skill_level" json:"skill_level"`
	CreatedAt           Timestamp  `db:"created_at" json:"created_at"`
	UpdatedAt           Timestamp  `db:"updated_at" json:"updated_at"`
}

type Roadmap struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Category    string    `db:"category" json:"category"`
	Description string    `db:"description" json:"description"`
	URL         string    `db:"url" json:"url"`
	IsTrending  bool      `db:"is_trending" json:"is_trending"`
	CreatedAt   Timestamp `db:"created_at" json:"created_at"`
}

type Hobby struct {
	ID                int64  `db:"id" json:"id"`
	Name              string `db:"name" json:"name"`
	Category          string `db:"category" json:"category"`
	Description       string `db:"description" json:"description"`
	DifficultyLevel   string `db:"difficulty_level" json:"difficulty_level"`
	TimeCommitment    string `db:"time_commitment" json:"time_commitment"`
	RequiredResources string `db:"required_resources" json:"required_resources"`
	LearningPath      string `db:"learning_path" json:"learning_path"`
	Tips              string `db:"tips" json:"tips"`
	ResourcesURL      string `db:"resources_url" json:"resources_url"`
	ImageURL          string `db:"image_url" json:"image_url,omitempty"`
}

type ChatRoom struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Category    string    `db:"category" json:"category"`
	Description string    `db:"description" json:"description"`
	Icon        string    `db:"icon" json:"icon"`
	MemberCount int       `db:"member_count" json:"member_count"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   Timestamp `db:"created_at" json:"created_at"`
}

type ChatMessage struct {
	ID        int64     `db:"id" json:"id"`
	RoomID    int64     `db:"room_id" json:"room_id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Username  string    `db:"username" json:"username"`
	Message   string    `db:"message" json:"message"`
	CreatedAt Timestamp `db:"created_at" json:"created_at"`
}

type Task struct {
	ID          int64     `db:"id" json:"id"`
	UserID      int64     `db:"user_id" json:"user_id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Status      string    `db:"status" json:"status"`
	DueDate     *string   `db:"due_date" json:"due_date,omitempty"`
	CreatedAt   Timestamp `db:"created_at" json:"created_at"`
}

const TaskPending = "pending"

type QuizAttempt struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Quiz      string    `db:"quiz" json:"quiz"`
	Score     int       `db:"score" json:"score"`
	Total     int       `db:"total" json:"total"`
	CreatedAt Timestamp `db:"created_at" json:"created_at"`
}

// ActivityCounts tallies a user's stored activity rows for the dashboard.
type ActivityCounts struct {
	Gratitude   int `db:"gratitude" json:"gratitude"`
	Mood        int `db:"mood" json:"mood"`
	Sleep       int `db:"sleep" json:"sleep"`
	Water       int `db:"water" json:"water"`
	Hygiene     int `db:"hygiene" json:"hygiene"`
	Meditation  int `db:"meditation" json:"meditation"`
	Tasks       int `db:"tasks" json:"tasks"`
	QuizCorrect int `db:"quiz_correct" json:"quiz_correct"`
}

// UserActivity pairs a user with their activity counts for ranking.
type UserActivity struct {
	UserID   int64  `db:"user_id"`
	Username string `db:"username"`
	ActivityCounts
}
