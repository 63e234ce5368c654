// Package catalog models the delivery catalog: the mapping from every item the
// shop sells to the ordered list of couriers able to deliver it.
//
// A Catalog is immutable once constructed. Loaders (file, database) build a new
// Catalog on each load and the application swaps the whole value, so a basket
// split always observes one consistent catalog.
package catalog
