package catalog

// Comment is a customer remark attached to a product.
// Comments are kept newest-first: AddComment prepends.
type Comment struct {
	Author string `json:"author" yaml:"author"`
	Text   string `json:"text" yaml:"text"`
	Date   string `json:"date" yaml:"date"` // ISO date, display only
}

// Product is a single catalog entry.
//
// Products are value types. Nothing in this package mutates a Product in
// place; operations that change a product (AddComment) return a new value.
type Product struct {
	ID          int64     `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Price       float64   `json:"price" yaml:"price"` // non-negative; rounding happens at presentation only
	Category    string    `json:"category" yaml:"category"`
	Rating      float64   `json:"rating" yaml:"rating"`
	ReviewCount int       `json:"review_count" yaml:"review_count"`
	Description string    `json:"description" yaml:"description"`
	InStock     bool      `json:"in_stock" yaml:"in_stock"`
	Comments    []Comment `json:"comments,omitempty" yaml:"comments,omitempty"`
}

// WithComment returns a copy of the product with the comment prepended.
// The receiver's comment slice is never aliased by the result.
func (p Product) WithComment(c Comment) Product {
	comments := make([]Comment, 0, len(p.Comments)+1)
	comments = append(comments, c)
	comments = append(comments, p.Comments...)
	p.Comments = comments
	return p
}
