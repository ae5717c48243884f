// Package compiler parses CUE catalog definitions into catalog values.
// Uses the CUE SDK's Go API directly (not CLI subprocess).
//
// A catalog file declares products under a top-level "product" struct,
// keyed by a label that is documentation only:
//
//	product: headphones: {
//		id:          1
//		name:        "Wireless Noise-Cancelling Headphones"
//		price:       249.99
//		category:    "Electronics"
//		rating:      4.5
//		reviews:     120
//		description: "..."
//		inStock:     true
//		comments: [{author: "Alice", text: "...", date: "2024-07-20"}]
//	}
package compiler

import (
	"fmt"

	"cuelang.org/go/cue"

	"github.com/nextgearshop/storefront/internal/catalog"
)

// CompileProduct parses a CUE value into a Product.
//
// Required fields: id, name, price, category. Optional: rating, reviews,
// description, comments, and inStock (which defaults to true - a catalog
// author opts products out of stock, not in).
func CompileProduct(v cue.Value) (catalog.Product, error) {
	if err := v.Err(); err != nil {
		return catalog.Product{}, formatCUEError(err)
	}

	var p catalog.Product

	idVal := v.LookupPath(cue.ParsePath("id"))
	if !idVal.Exists() {
		return catalog.Product{}, &CompileError{Field: "id", Message: "id is required", Pos: v.Pos()}
	}
	id, err := idVal.Int64()
	if err != nil {
		return catalog.Product{}, formatCUEError(err)
	}
	p.ID = id

	nameVal := v.LookupPath(cue.ParsePath("name"))
	if !nameVal.Exists() {
		return catalog.Product{}, &CompileError{Field: "name", Message: "name is required", Pos: v.Pos()}
	}
	if p.Name, err = nameVal.String(); err != nil {
		return catalog.Product{}, formatCUEError(err)
	}

	priceVal := v.LookupPath(cue.ParsePath("price"))
	if !priceVal.Exists() {
		return catalog.Product{}, &CompileError{Field: "price", Message: "price is required", Pos: v.Pos()}
	}
	if p.Price, err = priceVal.Float64(); err != nil {
		return catalog.Product{}, formatCUEError(err)
	}
	if p.Price < 0 {
		return catalog.Product{}, &CompileError{
			Field:   "price",
			Message: fmt.Sprintf("price must be non-negative, got %v", p.Price),
			Pos:     priceVal.Pos(),
		}
	}

	categoryVal := v.LookupPath(cue.ParsePath("category"))
	if !categoryVal.Exists() {
		return catalog.Product{}, &CompileError{Field: "category", Message: "category is required", Pos: v.Pos()}
	}
	if p.Category, err = categoryVal.String(); err != nil {
		return catalog.Product{}, formatCUEError(err)
	}

	if ratingVal := v.LookupPath(cue.ParsePath("rating")); ratingVal.Exists() {
		if p.Rating, err = ratingVal.Float64(); err != nil {
			return catalog.Product{}, formatCUEError(err)
		}
	}

	if reviewsVal := v.LookupPath(cue.ParsePath("reviews")); reviewsVal.Exists() {
		n, err := reviewsVal.Int64()
		if err != nil {
			return catalog.Product{}, formatCUEError(err)
		}
		p.ReviewCount = int(n)
	}

	if descVal := v.LookupPath(cue.ParsePath("description")); descVal.Exists() {
		if p.Description, err = descVal.String(); err != nil {
			return catalog.Product{}, formatCUEError(err)
		}
	}

	p.InStock = true
	if stockVal := v.LookupPath(cue.ParsePath("inStock")); stockVal.Exists() {
		if p.InStock, err = stockVal.Bool(); err != nil {
			return catalog.Product{}, formatCUEError(err)
		}
	}

	if commentsVal := v.LookupPath(cue.ParsePath("comments")); commentsVal.Exists() {
		if p.Comments, err = compileComments(commentsVal); err != nil {
			return catalog.Product{}, err
		}
	}

	return p, nil
}

// compileComments parses the comments list. Author and text are required;
// date is display-only and optional.
func compileComments(v cue.Value) ([]catalog.Comment, error) {
	iter, err := v.List()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var comments []catalog.Comment
	for iter.Next() {
		cv := iter.Value()
		var c catalog.Comment

		authorVal := cv.LookupPath(cue.ParsePath("author"))
		if !authorVal.Exists() {
			return nil, &CompileError{Field: "comments.author", Message: "author is required", Pos: cv.Pos()}
		}
		if c.Author, err = authorVal.String(); err != nil {
			return nil, formatCUEError(err)
		}

		textVal := cv.LookupPath(cue.ParsePath("text"))
		if !textVal.Exists() {
			return nil, &CompileError{Field: "comments.text", Message: "text is required", Pos: cv.Pos()}
		}
		if c.Text, err = textVal.String(); err != nil {
			return nil, formatCUEError(err)
		}

		if dateVal := cv.LookupPath(cue.ParsePath("date")); dateVal.Exists() {
			if c.Date, err = dateVal.String(); err != nil {
				return nil, formatCUEError(err)
			}
		}

		comments = append(comments, c)
	}

	return comments, nil
}

// CompileCatalog parses every product under the top-level "product" struct
// and builds a catalog from them.
func CompileCatalog(v cue.Value) (*catalog.Catalog, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	productsVal := v.LookupPath(cue.ParsePath("product"))
	if !productsVal.Exists() {
		return nil, &CompileError{Field: "product", Message: "no top-level product struct found", Pos: v.Pos()}
	}

	iter, err := productsVal.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var products []catalog.Product
	for iter.Next() {
		p, err := CompileProduct(iter.Value())
		if err != nil {
			return nil, fmt.Errorf("product %q: %w", iter.Selector().String(), err)
		}
		products = append(products, p)
	}

	if len(products) == 0 {
		return nil, &CompileError{Field: "product", Message: "catalog declares no products", Pos: productsVal.Pos()}
	}

	c, err := catalog.New(products)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	return c, nil
}
