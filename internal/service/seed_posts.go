package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/models"
)

type seedPost struct {
	title, content, category string
	linkURL, imageURL        string
	authorName, authorAvatar string
	channel                  string
}

var seedPostTemplates = []seedPost{
	{
		title:        "We're Hiring: Senior Full-Stack Developer",
		content:      "Join our growing engineering team! We're looking for talented developers passionate about building scalable solutions. Remote-friendly, competitive salary, and amazing team culture. Apply now!",
		category:     models.PostCategoryJobPosting,
		linkURL:      "https://socialripple.com/careers/senior-fullstack",
		imageURL:     "https://images.unsplash.com/photo-1758691736933-bb0f88fe2e0c?crop=entropy&cs=srgb&fm=jpg&q=85",
		authorName:   "Talent Acquisition",
		authorAvatar: "https://ui-avatars.com/api/?name=Talent+Acquisition&background=1164A3&color=fff",
		channel:      "#hiring",
	},
	{
		title:        "Product Launch: New AI-Powered Analytics Dashboard",
		content:      "We are excited to announce several major product enhancements to the SocialRipple platform that are designed to streamline workflows and boost end-user productivity. Check out the new features and share with your network!",
		category:     models.PostCategoryProductUpdate,
		linkURL:      "https://pls.sh/s/15a95251a2",
		imageURL:     "https://images.unsplash.com/photo-1582192904915-d89c7250b235?crop=entropy&cs=srgb&fm=jpg&q=85",
		authorName:   "Product Team",
		authorAvatar: "https://ui-avatars.com/api/?name=Product+Team&background=0EA5E9&color=fff",
		channel:      "#product-updates",
	},
	{
		title:        "Team Milestone: 50,000 Employees Empowered!",
		content:      "Incredible achievement! We've just helped our 50,000th employee become a brand advocate through our platform. Thank you to our amazing community for making this possible. Let's celebrate together!",
		category:     models.PostCategoryCompanyEvent,
		linkURL:      "https://socialripple.com/milestones",
		authorName:   "People & Culture",
		authorAvatar: "https://ui-avatars.com/api/?name=People+Culture&background=7C3AED&color=fff",
		channel:      "#general",
	},
}

// SeedPosts собирает стартовый набор постов. Время создания растёт на миллисекунду,
// чтобы порядок каталога совпадал с порядком набора.
func SeedPosts(now time.Time) []models.Post {
	posts := make([]models.Post, 0, len(seedPostTemplates))
	for i, tpl := range seedPostTemplates {
		posts = append(posts, models.Post{
			ID:           uuid.NewString(),
			Title:        tpl.title,
			Content:      tpl.content,
			LinkURL:      optional(tpl.linkURL),
			ImageURL:     optional(tpl.imageURL),
			AuthorName:   optional(tpl.authorName),
			AuthorAvatar: optional(tpl.authorAvatar),
			Channel:      optional(tpl.channel),
			Category:     tpl.category,
			Timestamp:    now.Add(time.Duration(i) * time.Millisecond),
		})
	}
	return posts
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
