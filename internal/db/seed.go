package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"mindfullearner/internal/models"
)

// Seeder inserts the reference catalogs. Rows are keyed by their unique
// name so reseeding an existing store is a no-op.
type Seeder struct {
	db     *sqlx.DB
	logger *zap.Logger
	now    func() time.Time
}

func NewSeeder(db *sqlx.DB, logger *zap.Logger) *Seeder {
	return &Seeder{db: db, logger: logger, now: time.Now}
}

// Seed populates roadmaps, hobbies and chat rooms in one transaction.
func (s *Seeder) Seed(ctx context.Context) error {
	created := models.NewTimestamp(s.now())

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	roadmapQuery := tx.Rebind(`INSERT INTO roadmaps (title, category, description, url, is_trending, created_at)
		VALUES (?, ?, ?, ?, ?, ?) ON CONFLICT (title) DO NOTHING`)
	var roadmapsAdded int64
	for _, r := range SeedRoadmaps {
		res, err := tx.ExecContext(ctx, roadmapQuery, r.Title, r.Category, r.Description, r.URL, r.IsTrending, created)
		if err != nil {
			return fmt.Errorf("seed roadmap %q: %w", r.Title, err)
		}
		n, _ := res.RowsAffected()
		roadmapsAdded += n
	}

	hobbyQuery := tx.Rebind(`INSERT INTO hobbies (name, category, description, difficulty_level, time_commitment,
		required_resources, learning_path, tips, resources_url, image_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?) ON CONFLICT (name) DO NOTHING`)
	var hobbiesAdded int64
	for _, h := range SeedHobbies {
		res, err := tx.ExecContext(ctx, hobbyQuery, h.Name, h.Category, h.Description, h.DifficultyLevel,
			h.TimeCommitment, h.RequiredResources, h.LearningPath, h.Tips, h.ResourcesURL, h.ImageURL)
		if err != nil {
			return fmt.Errorf("seed hobby %q: %w", h.Name, err)
		}
		n, _ := res.RowsAffected()
		hobbiesAdded += n
	}

	roomQuery := tx.Rebind(`INSERT INTO chat_rooms (name, category, description, icon, member_count, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?) ON CONFLICT (name) DO NOTHING`)
	var roomsAdded int64
	for _, c := range SeedChatRooms {
		res, err := tx.ExecContext(ctx, roomQuery, c.Name, c.Category, c.Description, c.Icon, c.MemberCount, c.IsActive, created)
		if err != nil {
			return fmt.Errorf("seed chat room %q: %w", c.Name, err)
		}
		n, _ := res.RowsAffected()
		roomsAdded += n
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}

	s.logger.Info("reference catalogs seeded",
		zap.Int64("roadmaps_added", roadmapsAdded),
		zap.Int64("hobbies_added", hobbiesAdded),
		zap.Int64("chat_rooms_added", roomsAdded),
	)
	return nil
}

var SeedRoadmaps = []models.Roadmap{
	{Title: "Frontend Development", Category: "Web Development", Description: "Complete roadmap to becoming a frontend developer", URL: "https://roadmap.sh/frontend", IsTrending: true},
	{Title: "Backend Development", Category: "Web Development", Description: "Step by step guide to becoming a backend developer", URL: "https://roadmap.sh/backend", IsTrending: true},
	{Title: "DevOps", Category: "Infrastructure", Description: "Complete DevOps roadmap for modern software development", URL: "https://roadmap.sh/devops", IsTrending: true},
	{Title: "Computer Science", Category: "Computer Science", Description: "Essential computer science concepts and fundamentals", URL: "https://roadmap.sh/computer-science", IsTrending: true},
	{Title: "JavaScript", Category: "Web Development", Description: "Master JavaScript programming language", URL: "https://roadmap.sh/javascript", IsTrending: true},
	{Title: "React", Category: "Web Development", Description: "Learn React for building user interfaces", URL: "https://roadmap.sh/react", IsTrending: true},
	{Title: "Python", Category: "Software Engineering", Description: "Complete Python programming roadmap", URL: "https://roadmap.sh/python", IsTrending: true},
	{Title: "Java", Category: "Software Engineering", Description: "Master Java programming language", URL: "https://roadmap.sh/java", IsTrending: true},
	{Title: "Android", Category: "Mobile Development", Description: "Learn Android app development", URL: "https://roadmap.sh/android", IsTrending: true},
	{Title: "Flutter", Category: "Mobile Development", Description: "Cross-platform app development with Flutter", URL: "https://roadmap.sh/flutter", IsTrending: true},
	{Title: "Cyber Security", Category: "Cybersecurity", Description: "Comprehensive guide to cyber security", URL: "https://roadmap.sh/cyber-security", IsTrending: true},
	{Title: "AI and Machine Learning", Category: "Artificial Intelligence", Description: "Path to becoming an AI engineer", URL: "https://roadmap.sh/ai-data-scientist", IsTrending: true},
	{Title: "System Design", Category: "Software Engineering", Description: "Learn to design scalable systems", URL: "https://roadmap.sh/system-design", IsTrending: true},
	{Title: "Software Design", Category: "Software Engineering", Description: "Master software design and architecture", URL: "https://roadmap.sh/software-design-architecture", IsTrending: true},
	{Title: "QA", Category: "Software Engineering", Description: "Quality Assurance engineering path", URL: "https://roadmap.sh/qa", IsTrending: true},
	{Title: "Software Architect", Category: "Software Engineering", Description: "Path to becoming a software architect", URL: "https://roadmap.sh/software-architect", IsTrending: true},
	{Title: "Blockchain", Category: "Blockchain", Description: "Complete blockchain development guide", URL: "https://roadmap.sh/blockchain", IsTrending: true},
	{Title: "Design System", Category: "UI/UX Design", Description: "Learn to create design systems", URL: "https://roadmap.sh/design-system", IsTrending: true},
	{Title: "MongoDB", Category: "Database", Description: "Master MongoDB database", URL: "https://roadmap.sh/mongodb", IsTrending: true},
	{Title: "PostgreSQL", Category: "Database", Description: "Learn PostgreSQL database", URL: "https://roadmap.sh/postgresql", IsTrending: true},
}

var SeedHobbies = []models.Hobby{
	{
		Name: "Digital Art", Category: "Art & Crafts", DifficultyLevel: "Beginner", TimeCommitment: "5-10 hours/week",
		Description:       "Create stunning digital artwork using tablets and software",
		RequiredResources: "Drawing tablet, Computer, Art software (e.g., Procreate, Photoshop)",
		LearningPath:      "1. Learn basic digital tools\n2. Practice fundamental shapes\n3. Study color theory\n4. Master layers and effects\n5. Develop your style",
		Tips:              "Start with simple sketches, watch tutorials, join online art communities",
		ResourcesURL:      "https://www.ctrlpaint.com/",
	},
	{
		Name: "Guitar", Category: "Music", DifficultyLevel: "Beginner", TimeCommitment: "3-5 hours/week",
		Description:       "Learn to play acoustic or electric guitar",
		RequiredResources: "Guitar, Picks, Tuner, Basic music theory knowledge",
		LearningPath:      "1. Learn basic chords\n2. Practice finger placement\n3. Study rhythm patterns\n4. Learn popular songs\n5. Explore different styles",
		Tips:              "Practice regularly, start with easy songs, use online tutorials",
		ResourcesURL:      "https://www.justinguitar.com/",
	},
	{
		Name: "Portrait Photography", Category: "Photography", DifficultyLevel: "Intermediate", TimeCommitment: "5-10 hours/week",
		Description:       "Capture stunning portraits with proper lighting and composition",
		RequiredResources: "DSLR/Mirrorless camera, Basic lighting equipment, Editing software",
		LearningPath:      "1. Understand camera settings\n2. Study lighting techniques\n3. Learn composition rules\n4. Practice with models\n5. Master post-processing",
		Tips:              "Focus on natural light first, practice with friends, study professional portraits",
		ResourcesURL:      "https://www.digitalcameraworld.com/",
	},
	{
		Name: "Streaming", Category: "Gaming", DifficultyLevel: "Beginner", TimeCommitment: "10+ hours/week",
		Description:       "Start your journey as a game streamer",
		RequiredResources: "Gaming PC/Console, Microphone, Webcam, Streaming software",
		LearningPath:      "1. Set up streaming equipment\n2. Learn OBS/Streamlabs\n3. Build channel identity\n4. Engage with viewers\n5. Network with other streamers",
		Tips:              "Be consistent with schedule, interact with chat, focus on one game initially",
		ResourcesURL:      "https://www.twitch.tv/creatorcamp",
	},
	{
		Name: "YouTube Content Creation", Category: "Video Creation", DifficultyLevel: "Intermediate", TimeCommitment: "10+ hours/week",
		Description:       "Create engaging video content for YouTube",
		RequiredResources: "Camera, Microphone, Editing software, Good lighting",
		LearningPath:      "1. Plan content strategy\n2. Learn video production\n3. Master editing skills\n4. Optimize for SEO\n5. Build audience engagement",
		Tips:              "Focus on quality over quantity, study successful channels, be consistent",
		ResourcesURL:      "https://creatoracademy.youtube.com/",
	},
	{
		Name: "Creative Writing", Category: "Writing", DifficultyLevel: "Beginner", TimeCommitment: "3-5 hours/week",
		Description:       "Develop your storytelling and writing skills",
		RequiredResources: "Writing software/notebook, Reading materials, Grammar resources",
		LearningPath:      "1. Study story structure\n2. Practice character development\n3. Learn dialogue writing\n4. Develop writing style\n5. Edit and revise",
		Tips:              "Read extensively, write daily, join writing communities",
		ResourcesURL:      "https://www.masterclass.com/writing",
	},
	{
		Name: "Contemporary Dance", Category: "Dance", DifficultyLevel: "Intermediate", TimeCommitment: "5-10 hours/week",
		Description:       "Learn modern dance techniques and expression",
		RequiredResources: "Dance space, Comfortable clothes, Mirror, Music system",
		LearningPath:      "1. Learn basic positions\n2. Study movement techniques\n3. Practice choreography\n4. Develop flexibility\n5. Create own routines",
		Tips:              "Stretch regularly, record yourself, take online classes",
		ResourcesURL:      "https://www.steezy.co/",
	},
	{
		Name: "Watercolor Painting", Category: "Art & Crafts", DifficultyLevel: "Beginner", TimeCommitment: "3-5 hours/week",
		Description:       "Master the delicate art of watercolor",
		RequiredResources: "Watercolor paints, Brushes, Paper, Basic color theory knowledge",
		LearningPath:      "1. Learn water control\n2. Practice basic techniques\n3. Study color mixing\n4. Master brush strokes\n5. Create compositions",
		Tips:              "Start with simple subjects, experiment with water ratios, use quality materials",
		ResourcesURL:      "https://www.artistsnetwork.com/",
	},
	{
		Name: "Music Production", Category: "Music", DifficultyLevel: "Intermediate", TimeCommitment: "10+ hours/week",
		Description:       "Create and produce your own music",
		RequiredResources: "DAW software, MIDI keyboard, Audio interface, Headphones",
		LearningPath:      "1. Learn DAW basics\n2. Study music theory\n3. Practice sound design\n4. Master mixing techniques\n5. Learn arrangement",
		Tips:              "Start with simple beats, study professional tracks, join producer communities",
		ResourcesURL:      "https://www.ableton.com/learn-live/",
	},
	{
		Name: "Street Photography", Category: "Photography", DifficultyLevel: "Beginner", TimeCommitment: "3-5 hours/week",
		Description:       "Capture life and culture through street photos",
		RequiredResources: "Camera, Comfortable shoes, Basic editing software",
		LearningPath:      "1. Learn camera settings\n2. Study composition\n3. Practice timing\n4. Develop observation skills\n5. Edit effectively",
		Tips:              "Always carry your camera, respect privacy, learn local laws",
		ResourcesURL:      "https://www.streetphotography.com/",
	},
}

var SeedChatRooms = []models.ChatRoom{
	{Name: "General Discussion", Category: "General", Description: "Chat about anything and everything", Icon: "💬", MemberCount: 156, IsActive: true},
	{Name: "Study Group", Category: "Education", Description: "Find study partners and share resources", Icon: "📚", MemberCount: 89, IsActive: true},
	{Name: "Movie Night", Category: "Entertainment", Description: "Join our weekly movie watching sessions", Icon: "🎬", MemberCount: 45, IsActive: false},
	{Name: "Music Lovers", Category: "Entertainment", Description: "Share and discover new music", Icon: "🎵", MemberCount: 72, IsActive: true},
	{Name: "Coffee Chat", Category: "Social", Description: "Casual conversations and making friends", Icon: "☕", MemberCount: 93, IsActive: true},
	{Name: "Meditation Circle", Category: "Mindfulness", Description: "Share meditation experiences and tips", Icon: "🧘", MemberCount: 67, IsActive: true},
	{Name: "Fitness Squad", Category: "Health", Description: "Workout tips and motivation", Icon: "💪", MemberCount: 84, IsActive: true},
	{Name: "Book Club", Category: "Education", Description: "Discuss books and share recommendations", Icon: "📖", MemberCount: 58, IsActive: true},
	{Name: "Tech Talk", Category: "Technology", Description: "Discuss latest tech trends and gadgets", Icon: "💻", MemberCount: 112, IsActive: true},
	{Name: "Art Gallery", Category: "Creative", Description: "Share your artwork and get feedback", Icon: "🎨", MemberCount: 76, IsActive: true},
}
