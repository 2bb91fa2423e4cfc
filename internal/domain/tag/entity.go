package tag

// Tag is a named skill (table tags)
type Tag struct {
	ID            int64   `db:"id"`
	Name          string  `db:"name"`
	SkillCategory *string `db:"skill_category"`
}
