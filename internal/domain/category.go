package domain

// Category is a catalog category. Active defaults to true when the upstream omits
// its status flag.
type Category struct {
	ID       string
	Name     string
	ImageURL *string
	ParentID *string
	Active   bool
	Extra    Extra
}

func (c *Category) UnmarshalJSON(data []byte) error {
	f, err := splitFields(data)
	if err != nil {
		return err
	}

	category := Category{Active: true}
	if category.ID, err = f.id("categoryId", "id", "_id"); err != nil {
		return err
	}
	if name := f.text("categoryName", "name"); name != nil {
		category.Name = *name
	}
	category.ImageURL = f.text("imageUrl", "image")
	category.ParentID = f.text("parentId")
	if active := f.flag("status", "active"); active != nil {
		category.Active = *active
	}
	category.Extra = f.extra()

	*c = category
	return nil
}

func (c Category) MarshalJSON() ([]byte, error) {
	known := map[string]any{
		"categoryId":   c.ID,
		"categoryName": c.Name,
		"status":       c.Active,
	}
	setOptional(known, "imageUrl", c.ImageURL)
	setOptional(known, "parentId", c.ParentID)
	return marshalRecord(c.Extra, known)
}
