// Package catalog holds the read-mostly inputs to order placement: vendors, their
// products and the delivery zones a customer can pick at checkout.
//
// Orders never reference catalog entries live. Placement copies the product name,
// unit price and the zone fee into the order, so later price, availability or fee
// changes leave placed orders untouched.
package catalog
