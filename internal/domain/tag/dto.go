package tag

// SkillResponse represents a tag in API responses
type SkillResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	SkillCategory *string `json:"skill_category"`
}

// SkillGroupResponse lists the skills of one category
type SkillGroupResponse struct {
	Category string          `json:"category"`
	Skills   []SkillResponse `json:"skills"`
}

// SkillResponseFromEntity converts entity to response
func SkillResponseFromEntity(t *Tag) SkillResponse {
	return SkillResponse{ID: t.ID, Name: t.Name, SkillCategory: t.SkillCategory}
}

// GroupByCategory keeps the input order of both groups and members.
// Tags without a category fall into the "" group.
func GroupByCategory(tags []*Tag) []SkillGroupResponse {
	groups := []SkillGroupResponse{}
	index := make(map[string]int)
	for _, t := range tags {
		category := ""
		if t.SkillCategory != nil {
			category = *t.SkillCategory
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, SkillGroupResponse{Category: category, Skills: []SkillResponse{}})
		}
		groups[i].Skills = append(groups[i].Skills, SkillResponseFromEntity(t))
	}
	return groups
}
