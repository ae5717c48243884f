// Package session holds the ephemeral per-session state that is neither
// cart nor filter: the signed-in user, the wishlist, and the current
// catalog value (which changes only by copy-on-write comment insertion).
//
// Nothing here persists. Login accepts any email/password pair - there is
// no authentication backend.
package session

import (
	"log/slog"

	"github.com/nextgearshop/storefront/internal/cart"
	"github.com/nextgearshop/storefront/internal/catalog"
)

// User identifies the signed-in customer.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session owns one logical session's user, wishlist, and catalog state.
// Like the cart engine it is single-owner and carries no lock.
type Session struct {
	catalog  *catalog.Catalog
	user     *User
	wishlist []catalog.Product
	cart     *cart.Engine // reset on login; may be nil
	notify   cart.Notifier
}

// Option configures a Session.
type Option func(*Session)

// WithCart attaches the cart engine so login can reset it.
func WithCart(e *cart.Engine) Option {
	return func(s *Session) { s.cart = e }
}

// WithNotifier sets the notification sink. Default: NopNotifier.
func WithNotifier(n cart.Notifier) Option {
	return func(s *Session) { s.notify = n }
}

// New creates a session over the given catalog with no user signed in and
// an empty wishlist.
func New(c *catalog.Catalog, opts ...Option) *Session {
	s := &Session{
		catalog: c,
		notify:  cart.NopNotifier{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog returns the session's current catalog value.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// ProductByID looks up a product in the current catalog.
func (s *Session) ProductByID(id int64) (catalog.Product, bool) {
	return s.catalog.ByID(id)
}

// Login signs a user in. Any email/name pair is accepted. Starting a new
// identity resets the cart and wishlist so state never leaks between users.
func (s *Session) Login(email, name string) {
	s.user = &User{Name: name, Email: email}
	s.wishlist = nil
	if s.cart != nil {
		s.cart.Clear()
	}
	slog.Info("user logged in", "email", email)
	s.notify.Notify("Welcome back, " + name + "!")
}

// Logout signs the current user out. No-op notification aside, the
// wishlist and cart survive a logout; only login resets them.
func (s *Session) Logout() {
	s.user = nil
	slog.Info("user logged out")
	s.notify.Notify("You have been logged out.")
}

// CurrentUser returns the signed-in user, if any.
func (s *Session) CurrentUser() (User, bool) {
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// ToggleWishlist adds the product to the wishlist if absent, removes it if
// present. Returns true if the product is on the wishlist afterwards.
func (s *Session) ToggleWishlist(p catalog.Product) bool {
	for i := range s.wishlist {
		if s.wishlist[i].ID == p.ID {
			s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
			s.notify.Notify(p.Name + " removed from wishlist.")
			return false
		}
	}
	s.wishlist = append(s.wishlist, p)
	s.notify.Notify(p.Name + " added to wishlist!")
	return true
}

// InWishlist reports whether the product id is on the wishlist.
func (s *Session) InWishlist(productID int64) bool {
	for _, p := range s.wishlist {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// WishlistItems returns the wishlist in insertion order. The slice is a copy.
func (s *Session) WishlistItems() []catalog.Product {
	out := make([]catalog.Product, len(s.wishlist))
	copy(out, s.wishlist)
	return out
}

// WishlistCount returns the number of wishlist entries.
func (s *Session) WishlistCount() int {
	return len(s.wishlist)
}

// AddComment prepends a comment to the identified product, swapping in the
// new catalog value. Returns false (and leaves the catalog untouched) if
// the id is unknown.
func (s *Session) AddComment(productID int64, c catalog.Comment) bool {
	next, ok := s.catalog.AddComment(productID, c)
	if !ok {
		return false
	}
	s.catalog = next
	s.notify.Notify("Comment added successfully!")
	return true
}
