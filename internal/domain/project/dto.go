package project

// CreateProjectRequest represents POST /addProject body
type CreateProjectRequest struct {
	Name             string   `json:"name" validate:"max=255"`
	ModuleCode       string   `json:"module_code" validate:"max=50"`
	ModuleName       string   `json:"module_name" validate:"max=255"`
	Description      string   `json:"description"`
	Img              string   `json:"img" validate:"max=2048"`
	Category         string   `json:"category" validate:"max=100"`
	GithubLink       string   `json:"github_link" validate:"max=2048"`
	DemoLink         string   `json:"demo_link" validate:"max=2048"`
	AdditionalImages []string `json:"additional_images" validate:"omitempty,dive,required,max=2048"`
}

// UpdateProjectRequest represents PUT /updateProject/{id} body.
// A nil field was not supplied; JSON null counts as not supplied.
type UpdateProjectRequest struct {
	Name             *string   `json:"name" validate:"omitempty,max=255"`
	ModuleCode       *string   `json:"module_code" validate:"omitempty,max=50"`
	ModuleName       *string   `json:"module_name" validate:"omitempty,max=255"`
	Description      *string   `json:"description"`
	Img              *string   `json:"img" validate:"omitempty,max=2048"`
	Category         *string   `json:"category" validate:"omitempty,max=100"`
	GithubLink       *string   `json:"github_link" validate:"omitempty,max=2048"`
	DemoLink         *string   `json:"demo_link" validate:"omitempty,max=2048"`
	AdditionalImages *[]string `json:"additional_images" validate:"omitempty,dive,required,max=2048"`
}

// ProjectResponse represents a project in API responses
type ProjectResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	ModuleCode  string  `json:"module_code"`
	ModuleName  string  `json:"module_name"`
	Description string  `json:"description"`
	Img         *string `json:"img"`
	Category    *string `json:"category"`
	GithubLink  *string `json:"github_link"`
	DemoLink    *string `json:"demo_link"`
}

// ImageResponse represents a project image
type ImageResponse struct {
	ID        int64   `json:"id"`
	ImageURL  string  `json:"image_url"`
	SortOrder int     `json:"sort_order"`
	Caption   *string `json:"caption"`
}

// TagResponse represents a tag attached to a project
type TagResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DetailResponse is a project merged with its images and tags
type DetailResponse struct {
	ProjectResponse
	Images []ImageResponse `json:"images"`
	Tags   []TagResponse   `json:"tags"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ProjectResponseFromEntity converts entity to response
func ProjectResponseFromEntity(p *Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		ModuleCode:  deref(p.ModuleCode),
		ModuleName:  deref(p.ModuleName),
		Description: deref(p.Description),
		Img:         p.Img,
		Category:    p.Category,
		GithubLink:  p.GithubLink,
		DemoLink:    p.DemoLink,
	}
}

func projectResponses(projects []*Project) []ProjectResponse {
	items := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		items[i] = ProjectResponseFromEntity(p)
	}
	return items
}

func imageResponses(images []*Image) []ImageResponse {
	items := make([]ImageResponse, len(images))
	for i, img := range images {
		items[i] = ImageResponse{ID: img.ID, ImageURL: img.ImageURL, SortOrder: img.SortOrder, Caption: img.Caption}
	}
	return items
}

func tagResponses(tags []*Tag) []TagResponse {
	items := make([]TagResponse, len(tags))
	for i, t := range tags {
		items[i] = TagResponse{ID: t.ID, Name: t.Name}
	}
	return items
}

// DetailResponseFromEntity converts the aggregate to response
func DetailResponseFromEntity(d *Detail) DetailResponse {
	return DetailResponse{
		ProjectResponse: ProjectResponseFromEntity(d.Project),
		Images:          imageResponses(d.Images),
		Tags:            tagResponses(d.Tags),
	}
}
