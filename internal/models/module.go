package models

// Module is a top-level content grouping (e.g. "Networking").
type Module struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// Category is a sub-grouping of questions inside a module.
type Category struct {
	ID       string `bson:"_id,omitempty" json:"id"`
	Name     string `bson:"name" json:"name"`
	ModuleID string `bson:"module_id" json:"module_id"`
}

// CategoryView is a category enriched with the requesting user's progress.
type CategoryView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Progress int    `json:"progress"`
}

// ModuleView is a module with its categories and the user's rollup progress.
type ModuleView struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Progress    int            `json:"progress"`
	Categories  []CategoryView `json:"categories"`
}
