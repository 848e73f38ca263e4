package main

import "blog/internal/domain/entity"

// samplePosts returns the starter content created on an empty database.
func samplePosts() []*entity.Post {
	return []*entity.Post{
		{
			Title:     "Welcome to the Blog",
			Slug:      "welcome-to-the-blog",
			Excerpt:   "A quick tour of what this site is about.",
			Content:   "<p>Welcome! This is the first post. Log in with the admin account to start writing your own.</p>",
			Author:    "admin",
			Category:  "announcements",
			Tags:      "welcome,meta",
			Published: true,
		},
		{
			Title:     "Writing Your First Post",
			Slug:      "writing-your-first-post",
			Excerpt:   "How to create, edit and publish content through the API.",
			Content:   "<p>Posts are created through the admin API. Drafts stay invisible until you flip the <em>published</em> flag.</p><p>Slugs are derived from the title automatically.</p>",
			Author:    "admin",
			Category:  "guides",
			Tags:      "guide,writing",
			Published: true,
		},
		{
			Title:     "How Comments Work",
			Slug:      "how-comments-work",
			Excerpt:   "Threaded discussions, moderation and what readers see.",
			Content:   "<p>Readers can comment without an account and reply to each other without depth limits.</p><p>With moderation enabled, new comments stay hidden until approved.</p>",
			Author:    "admin",
			Category:  "guides",
			Tags:      "guide,comments",
			Published: true,
		},
	}
}
