package compiler

import (
	"testing"

	"cuelang.org/go/cue/cuecontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextgearshop/storefront/internal/catalog"
)

func compileValue(t *testing.T, src string) catalog.Product {
	t.Helper()
	v := cuecontext.New().CompileString(src)
	require.NoError(t, v.Err())
	p, err := CompileProduct(v)
	require.NoError(t, err)
	return p
}

func TestCompileProduct_AllFields(t *testing.T) {
	p := compileValue(t, `
		id:          1
		name:        "Wireless Noise-Cancelling Headphones"
		price:       249.99
		category:    "Electronics"
		rating:      4.5
		reviews:     120
		description: "Immersive sound, all-day comfort."
		inStock:     true
		comments: [
			{author: "Alice", text: "Amazing sound quality!", date: "2024-07-20"},
			{author: "Bob", text: "Very comfortable."},
		]
	`)

	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, "Wireless Noise-Cancelling Headphones", p.Name)
	assert.Equal(t, 249.99, p.Price)
	assert.Equal(t, "Electronics", p.Category)
	assert.Equal(t, 4.5, p.Rating)
	assert.Equal(t, 120, p.ReviewCount)
	assert.True(t, p.InStock)
	require.Len(t, p.Comments, 2)
	assert.Equal(t, "Alice", p.Comments[0].Author)
	assert.Equal(t, "2024-07-20", p.Comments[0].Date)
	assert.Empty(t, p.Comments[1].Date, "comment date is optional")
}

func TestCompileProduct_MinimalFields(t *testing.T) {
	p := compileValue(t, `
		id:       6
		name:     "Gaming Mouse"
		price:    75.00
		category: "Peripherals"
	`)

	assert.Equal(t, int64(6), p.ID)
	assert.True(t, p.InStock, "inStock defaults to true")
	assert.Zero(t, p.Rating)
	assert.Zero(t, p.ReviewCount)
	assert.Empty(t, p.Comments)
}

func TestCompileProduct_OutOfStock(t *testing.T) {
	p := compileValue(t, `
		id:       3
		name:     "Professional DSLR Camera"
		price:    1250.50
		category: "Cameras"
		inStock:  false
	`)
	assert.False(t, p.InStock)
}

func TestCompileProduct_RequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		field string
	}{
		{
			name: "missing id",
			src: `
				name:     "X"
				price:    1.0
				category: "C"
			`,
			field: "id",
		},
		{
			name: "missing name",
			src: `
				id:       1
				price:    1.0
				category: "C"
			`,
			field: "name",
		},
		{
			name: "missing price",
			src: `
				id:       1
				name:     "X"
				category: "C"
			`,
			field: "price",
		},
		{
			name: "missing category",
			src: `
				id:    1
				name:  "X"
				price: 1.0
			`,
			field: "category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := cuecontext.New().CompileString(tt.src)
			require.NoError(t, v.Err())

			_, err := CompileProduct(v)
			require.Error(t, err)

			var ce *CompileError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.field, ce.Field)
		})
	}
}

func TestCompileProduct_NegativePrice(t *testing.T) {
	v := cuecontext.New().CompileString(`
		id:       1
		name:     "X"
		price:    -5.0
		category: "C"
	`)
	require.NoError(t, v.Err())

	_, err := CompileProduct(v)
	require.Error(t, err)

	var ce *CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "price", ce.Field)
}

func TestCompileProduct_RequiredCommentFields(t *testing.T) {
	v := cuecontext.New().CompileString(`
		id:       1
		name:     "X"
		price:    1.0
		category: "C"
		comments: [{author: "Alice"}]
	`)
	require.NoError(t, v.Err())

	_, err := CompileProduct(v)
	require.Error(t, err)

	var ce *CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "comments.text", ce.Field)
}

func TestCompileCatalog(t *testing.T) {
	v := cuecontext.New().CompileString(`
		product: mouse: {
			id:       6
			name:     "Gaming Mouse"
			price:    75.00
			category: "Peripherals"
		}
		product: speaker: {
			id:       5
			name:     "Bluetooth Portable Speaker"
			price:    89.99
			category: "Audio"
		}
	`)
	require.NoError(t, v.Err())

	c, err := CompileCatalog(v)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	// Products come out id-sorted regardless of declaration order.
	products := c.Products()
	assert.Equal(t, int64(5), products[0].ID)
	assert.Equal(t, int64(6), products[1].ID)
	assert.Equal(t, 90.0, c.MaxPrice())
}

func TestCompileCatalog_NoProductStruct(t *testing.T) {
	v := cuecontext.New().CompileString(`catalog: {}`)
	require.NoError(t, v.Err())

	_, err := CompileCatalog(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no top-level product struct")
}

func TestCompileCatalog_EmptyProductStruct(t *testing.T) {
	v := cuecontext.New().CompileString(`product: {}`)
	require.NoError(t, v.Err())

	_, err := CompileCatalog(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declares no products")
}

func TestCompileCatalog_DuplicateIDs(t *testing.T) {
	v := cuecontext.New().CompileString(`
		product: a: {
			id:       1
			name:     "A"
			price:    1.0
			category: "C"
		}
		product: b: {
			id:       1
			name:     "B"
			price:    2.0
			category: "C"
		}
	`)
	require.NoError(t, v.Err())

	_, err := CompileCatalog(v)
	assert.Error(t, err)
}
