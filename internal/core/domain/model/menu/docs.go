// Package menu provides the catalog side of the food delivery domain.
//
// The package includes:
//   - Item: an immutable named price entry
//   - Menu: a mutable, ordered catalog of Items
//
// Key business rules:
//   - Items must have a non-blank name and a positive price
//   - Duplicate names are allowed; lookups return the first match in catalog order
//   - Snapshots returned by the Menu never alias its internal storage
package menu
