// Package services provides domain services that span more than one aggregate
// of the ordering domain.
//
// The package includes:
//   - Checkout: turns a customer's cart and a delivery zone into a placed Order
//   - DailySummarizer: folds a day's orders into vendor and runner summaries
package services
