package services

import (
	"time"

	"github.com/skillpath/roadmapper/internal/config"
	"github.com/skillpath/roadmapper/internal/db"
	"github.com/skillpath/roadmapper/internal/llm/gemini"
	"github.com/skillpath/roadmapper/internal/llm/planner"
	"github.com/skillpath/roadmapper/internal/services/roadmap"
	"github.com/skillpath/roadmapper/internal/services/user"
)

type Services struct {
	User    *user.UserService
	Roadmap *roadmap.RoadmapService
}

func NewServices(conf *config.Config) *Services {
	dbconn := db.NewConn(conf)

	llmClient := gemini.NewClient(&gemini.ClientOptions{
		BaseURL: conf.GEMINI_BASE_URL,
		ApiKey:  conf.GEMINI_API_KEY,
		Model:   conf.GEMINI_MODEL,
		Timeout: time.Duration(conf.GEMINI_TIMEOUT_SECONDS) * time.Second,
	})

	return &Services{
		User:    user.NewUserService(user.NewUserRepo(dbconn)),
		Roadmap: roadmap.NewRoadmapService(roadmap.NewRoadmapRepo(dbconn), planner.New(llmClient)),
	}
}
