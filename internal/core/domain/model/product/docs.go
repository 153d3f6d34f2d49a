// Package product provides the Product aggregate for the eshop catalog.
//
// A product carries a display name, a current price, and a finite stock
// count. Stock is the contended resource of the whole system: every pending
// order holds stock reserved out of it, and the non-negativity of the count
// is the central invariant the product ledger protects.
//
// Key business rules:
//   - Stock never goes negative; a reservation larger than the available
//     stock fails with InsufficientStockError and changes nothing
//   - Stock only changes through Reserve and Release
//   - Price changes never affect orders already placed (orders snapshot the
//     unit price at creation time)
package product
