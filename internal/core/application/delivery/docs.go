// Package delivery holds the Manager, the single owner of the tracker's mutable
// state: active orders, completed orders, registered agents and the order number counter.
//
// Order lifecycle driven by the Manager:
//
//	CreateOrder ──> ORDER_PLACED ──AssignAgent──> PREPARING ──UpdateStatus──> DISPATCHED ──CompleteDelivery──> DELIVERED
//
// UpdateStatus may set any status directly; only AdvanceStatus follows the natural
// sequence. Every Manager method is safe for concurrent use.
package delivery
