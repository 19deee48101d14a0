package catalog

import "errors"

var (
	ErrUnknownCategory     = errors.New("categoria inválida")
	ErrStorageNotOffered   = errors.New("capacidade não disponível para este modelo")
	ErrColorNotOffered     = errors.New("cor não disponível para este modelo")
	ErrIncompleteSelection = errors.New("selecione categoria, ano e modelo")
)

// Selection is a cursor over the catalog hierarchy:
// category -> year -> item -> {storage, color}. Setting a level always clears
// every deeper level first, so stale descendants can never survive a change
// higher up. Zero values mean "unselected".
type Selection struct {
	cat *Catalog

	Category string
	Year     int
	Item     string
	Storage  string
	Color    string
}

func NewSelection(c *Catalog) *Selection { return &Selection{cat: c} }

// SetCategory picks a category and resets year, item, storage and color.
// An empty value just clears the selection from this level down.
func (s *Selection) SetCategory(v string) error {
	s.Category, s.Year, s.Item, s.Storage, s.Color = "", 0, "", "", ""
	if v == "" {
		return nil
	}
	for _, c := range s.cat.Categories() {
		if c == v {
			s.Category = v
			return nil
		}
	}
	return ErrUnknownCategory
}

// SetYear picks a year and resets item, storage and color. A year with no
// bucket is not an error: Items() simply comes back empty.
func (s *Selection) SetYear(v int) {
	s.Year, s.Item, s.Storage, s.Color = 0, "", "", ""
	if v > 0 && s.Category != "" {
		s.Year = v
	}
}

// SetItem picks an item by name and resets storage and color.
func (s *Selection) SetItem(name string) error {
	s.Item, s.Storage, s.Color = "", "", ""
	if name == "" {
		return nil
	}
	if _, err := s.cat.ItemByName(s.Category, s.Year, name); err != nil {
		return err
	}
	s.Item = name
	return nil
}

// SetStorage picks one of the current item's storages.
func (s *Selection) SetStorage(v string) error {
	s.Storage = ""
	if v == "" {
		return nil
	}
	it, ok := s.CurrentItem()
	if !ok {
		return ErrStorageNotOffered
	}
	for _, st := range it.Storages {
		if st == v {
			s.Storage = v
			return nil
		}
	}
	return ErrStorageNotOffered
}

// SetColor picks one of the current item's colors.
func (s *Selection) SetColor(v string) error {
	s.Color = ""
	if v == "" {
		return nil
	}
	it, ok := s.CurrentItem()
	if !ok {
		return ErrColorNotOffered
	}
	for _, col := range it.Colors {
		if col == v {
			s.Color = v
			return nil
		}
	}
	return ErrColorNotOffered
}

// Years lists the years offered for the selected category.
func (s *Selection) Years() []int {
	if s.Category == "" {
		return nil
	}
	return s.cat.Years(s.Category)
}

// Items lists the items offered for the selected category and year.
func (s *Selection) Items() []Item {
	if s.Category == "" || s.Year == 0 {
		return nil
	}
	return s.cat.Items(s.Category, s.Year)
}

// CurrentItem returns the selected item, if one is chosen.
func (s *Selection) CurrentItem() (Item, bool) {
	if s.Item == "" {
		return Item{}, false
	}
	it, err := s.cat.ItemByName(s.Category, s.Year, s.Item)
	if err != nil {
		return Item{}, false
	}
	return it, true
}

// ProductDraft is a validated starting point for a product record; prices,
// condition and the rest are filled in on the edit form afterwards.
type ProductDraft struct {
	Category string
	Name     string
	Model    string
	Storage  string
	Color    string
}

// Draft materializes the selection. Category and item are required; storage
// and color are optional but, when set, are guaranteed to come from the
// item's own lists.
func (s *Selection) Draft() (ProductDraft, error) {
	if s.Category == "" || s.Item == "" {
		return ProductDraft{}, ErrIncompleteSelection
	}
	it, ok := s.CurrentItem()
	if !ok {
		return ProductDraft{}, ErrIncompleteSelection
	}
	return ProductDraft{
		Category: s.Category,
		Name:     it.Name,
		Model:    it.Name,
		Storage:  s.Storage,
		Color:    s.Color,
	}, nil
}
