package models

// MenuItem is a single dish or drink on the menu.
type MenuItem struct {
	Name  string   `json:"name"`
	Price string   `json:"price"`
	Tags  []string `json:"tags,omitempty"`
}

// MenuCategory groups menu items under a named category.
type MenuCategory struct {
	Category string     `json:"category"`
	Items    []MenuItem `json:"items"`
}
