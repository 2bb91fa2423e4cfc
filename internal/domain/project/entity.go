package project

// Project is a portfolio entry (table portfolio)
type Project struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	ModuleCode  *string `db:"module_code"`
	ModuleName  *string `db:"module_name"`
	Description *string `db:"description"`
	Img         *string `db:"img"`
	Category    *string `db:"category"`
	GithubLink  *string `db:"github_link"`
	DemoLink    *string `db:"demo_link"`
}

// Image is an ordered media item of a project (table portfolio_images)
type Image struct {
	ID        int64   `db:"id"`
	ImageURL  string  `db:"image_url"`
	SortOrder int     `db:"sort_order"`
	Caption   *string `db:"caption"`
}

// Tag is a skill attached to a project through portfolio_tags
type Tag struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// Detail aggregates a project with its images and tags
type Detail struct {
	Project *Project
	Images  []*Image
	Tags    []*Tag
}
