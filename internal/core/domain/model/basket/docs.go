// Package basket models a customer basket: the ordered list of purchased item
// names that has to be split between couriers. Duplicates are meaningful, each
// occurrence is a separate unit to deliver.
package basket
