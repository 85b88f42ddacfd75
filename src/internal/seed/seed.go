// Package seed loads the demo session fixtures: four users, four posts
// and two interests. The session starts from these and mutates in memory
// only.
package seed

import (
	"time"

	"github.com/DeepanshuSagore/HackFinder/src/internal/model"
	"github.com/DeepanshuSagore/HackFinder/src/internal/store"

	"go.uber.org/zap"
)

const (
	femaleAvatar = "/assets/female-user.png"
	maleAvatar   = "/assets/male-user.png"
)

func Load(repo store.Repository, logger *zap.Logger) {
	users := demoUsers()
	for _, u := range users {
		repo.PutUser(u)
	}

	// AppendPost prepends, so insert in reverse to end up with the demo
	// feed order.
	posts := demoPosts()
	for i := len(posts) - 1; i >= 0; i-- {
		repo.AppendPost(posts[i])
	}

	for _, in := range demoInterests() {
		repo.AppendInterest(in)
	}

	logger.Info("seed: demo data loaded",
		zap.Int("users", len(users)),
		zap.Int("posts", len(posts)))
}

func demoUsers() []model.User {
	return []model.User{
		{
			ID:         "1",
			Name:       "Aditi Sharma",
			Email:      "aditi@hackfinder.in",
			Avatar:     femaleAvatar,
			Bio:        "Full-stack developer building fintech tools for the Indian market",
			Skills:     []string{"React", "Node.js", "Python", "TensorFlow", "PostgreSQL"},
			Roles:      []string{"Full Stack Developer", "ML Engineer"},
			Experience: "intermediate",
			Location:   "Bengaluru, India",
			GitHub:     "github.com/aditi-codes",
			LinkedIn:   "linkedin.com/in/aditisharma",
			Verified:   true,
		},
		{
			ID:         "2",
			Name:       "Rohit Verma",
			Email:      "rohit@hackfinder.in",
			Avatar:     maleAvatar,
			Bio:        "UI/UX designer blending research with crisp visual systems",
			Skills:     []string{"Figma", "React", "CSS", "JavaScript", "Tailwind"},
			Roles:      []string{"UI/UX Designer", "Frontend Developer"},
			Experience: "advanced",
			Location:   "Mumbai, India",
			GitHub:     "github.com/rohitverma",
			LinkedIn:   "linkedin.com/in/rohitverma",
			Verified:   true,
		},
		{
			ID:         "3",
			Name:       "Karan Gupta",
			Email:      "karan@hackfinder.in",
			Avatar:     maleAvatar,
			Bio:        "Backend engineer specialising in cloud-native healthcare systems",
			Skills:     []string{"Go", "Docker", "Kubernetes", "AWS", "PostgreSQL"},
			Roles:      []string{"Backend Engineer", "DevOps Engineer"},
			Experience: "advanced",
			Location:   "Hyderabad, India",
			GitHub:     "github.com/karangupta",
			LinkedIn:   "linkedin.com/in/karangupta",
			Verified:   false,
		},
		{
			ID:         "4",
			Name:       "Priya Nair",
			Email:      "priya@hackfinder.in",
			Avatar:     femaleAvatar,
			Bio:        "Solidity developer focused on DeFi and Web3 experiences",
			Skills:     []string{"Solidity", "Web3", "Hardhat", "Node.js"},
			Roles:      []string{"Blockchain Developer", "Smart Contract Engineer"},
			Experience: "advanced",
			Location:   "Kochi, India",
			GitHub:     "github.com/priyanair",
			LinkedIn:   "linkedin.com/in/priyanair",
			Verified:   true,
		},
	}
}

func demoPosts() []model.Post {
	return []model.Post{
		{
			ID:           "1",
			Type:         model.PostTypeTeam,
			Title:        "UPI Insights Platform - Need Frontend Dev",
			Description:  "We are building a UPI analytics dashboard for fintech founders, combining RBI feeds with AI-powered insights. Looking for an experienced React developer to polish the product experience before launch.",
			OwnerID:      "1",
			OwnerName:    "Aditi Sharma",
			OwnerAvatar:  femaleAvatar,
			TechTags:     []string{"React", "TypeScript", "Web3", "D3.js", "Tailwind"},
			RolesNeeded:  []string{"Frontend Developer"},
			TeamSize:     4,
			TeamCapacity: 5,
			CurrentMembers: []model.TeamMember{
				{Name: "Aditi Sharma", Role: "Product Lead", Avatar: femaleAvatar},
				{Name: "Rohan Desai", Role: "AI Engineer", Avatar: maleAvatar},
				{Name: "Meera Iyer", Role: "Product Manager", Avatar: femaleAvatar},
				{Name: "Sahil Kapoor", Role: "Backend Engineer", Avatar: maleAvatar},
			},
			CreatedAt: date(2024, time.January, 15),
		},
		{
			ID:           "2",
			Type:         model.PostTypeIndividual,
			Title:        "Product Designer Seeking Hackathon Team",
			Description:  "Hi! I'm a senior designer with 5+ years of experience in product design. I've won 3 hackathons and specialise in user research, prototyping, and frontend implementation. Looking for a team working on purpose-driven consumer apps.",
			OwnerID:      "2",
			OwnerName:    "Rohit Verma",
			OwnerAvatar:  maleAvatar,
			TechTags:     []string{"Figma", "React", "Tailwind", "Framer"},
			DesiredRoles: []string{"UI/UX Designer", "Frontend Developer"},
			CreatedAt:    date(2024, time.January, 18),
		},
		{
			ID:           "3",
			Type:         model.PostTypeTeam,
			Title:        "AI Diagnostics Team - Hiring ML & Frontend",
			Description:  "We are building a clinical decision support tool for radiologists using computer vision and NLP. Pilot deployments with two Indian hospitals are live and we are expanding our technical team.",
			OwnerID:      "3",
			OwnerName:    "Karan Gupta",
			OwnerAvatar:  maleAvatar,
			TechTags:     []string{"Python", "TensorFlow", "React", "Node.js", "AWS"},
			RolesNeeded:  []string{"ML Engineer", "Frontend Developer"},
			TeamSize:     3,
			TeamCapacity: 5,
			CurrentMembers: []model.TeamMember{
				{Name: "Karan Gupta", Role: "Tech Lead", Avatar: maleAvatar},
				{Name: "Dr. Nisha Rao", Role: "Clinical Advisor", Avatar: femaleAvatar},
				{Name: "Vikram Menon", Role: "Data Scientist", Avatar: maleAvatar},
			},
			CreatedAt: date(2024, time.January, 20),
		},
		{
			ID:           "4",
			Type:         model.PostTypeIndividual,
			Title:        "Blockchain Developer Seeking Web3 Project",
			Description:  "Solidity expert with 3 years in DeFi. Built multiple DEX protocols and NFT marketplaces. Looking for an innovative Web3 team to build the next big thing in decentralized finance or gaming.",
			OwnerID:      "4",
			OwnerName:    "Priya Nair",
			OwnerAvatar:  femaleAvatar,
			TechTags:     []string{"Solidity", "Web3", "React", "Node.js", "Hardhat"},
			DesiredRoles: []string{"Blockchain Developer", "Smart Contract Engineer"},
			CreatedAt:    date(2024, time.January, 22),
		},
	}
}

func demoInterests() []model.Interest {
	return []model.Interest{
		{
			ID:        "1",
			UserID:    "2",
			PostID:    "1",
			Message:   "Hi Aditi! I'd love to join the UPI Insights build as the frontend owner. I've led two React fintech dashboards and can help polish the product experience.",
			Roles:     []string{"Frontend Developer"},
			Status:    model.StatusPending,
			CreatedAt: date(2024, time.January, 16),
		},
		{
			ID:        "2",
			UserID:    "1",
			PostID:    "2",
			Message:   "Hi Rohit! Your design-first mindset fits perfectly with our health tech hackathon squad. Let's sync to see if our timelines align.",
			Roles:     []string{},
			Status:    model.StatusAccepted,
			CreatedAt: date(2024, time.January, 19),
		},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
