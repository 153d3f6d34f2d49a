// Package services contains stateless domain services for the eshop system.
//
// Domain services host business rules that span aggregates or do not belong
// to a single entity. The package currently provides TransitionPolicy, the
// capability check deciding which actor class may request which order status
// transition.
package services
