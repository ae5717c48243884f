package testutil

// RecordingNavigator captures checkout redirects for assertion.
type RecordingNavigator struct {
	// Confirmations holds the order numbers passed to GoToConfirmation.
	Confirmations []string
	// HomeVisits counts GoHome calls.
	HomeVisits int
}

// GoToConfirmation implements checkout.Navigator.
func (n *RecordingNavigator) GoToConfirmation(orderNumber string) {
	n.Confirmations = append(n.Confirmations, orderNumber)
}

// GoHome implements checkout.Navigator.
func (n *RecordingNavigator) GoHome() {
	n.HomeVisits++
}
