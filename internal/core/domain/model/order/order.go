package order

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrTotalsDoNotReconcile is returned when the persisted total does not
	// equal the sum of its components, which means stored data is corrupt.
	ErrTotalsDoNotReconcile = errors.New("order totals do not reconcile")
)

// Pricing carries the server-side pricing inputs for an order: the
// restaurant's delivery fee, the tax rate applied to the subtotal, and the
// customer-chosen service fee, tip, and discount amounts. The subtotal and
// the resulting totals are always computed by the aggregate itself;
// client-supplied totals are advisory only.
type Pricing struct {
	DeliveryFee kernel.Money
	TaxRate     decimal.Decimal
	ServiceFee  kernel.Money
	Tip         kernel.Money
	Discount    kernel.Money
}

// NewOrderParams bundles the validated inputs to NewOrder.
type NewOrderParams struct {
	ID                kernel.UUID
	OrderNumber       kernel.OrderNumber
	UserID            *kernel.UUID // nil for guest checkout
	UserEmail         string
	RestaurantID      kernel.UUID
	RestaurantName    string
	RestaurantImage   string
	Items             []Item
	DeliveryType      DeliveryType
	DeliveryAddress   *Address // required when DeliveryType is Delivery
	Contact           ContactInfo
	PaymentMethod     PaymentMethod
	Pricing           Pricing
	EstimatedDelivery time.Time
	Now               time.Time
}

// Order represents a customer order in the system. It is the aggregate root
// that manages the order lifecycle from checkout through delivery, and the
// only place monetary totals are computed.
//
// Order maintains these invariants:
//   - items is non-empty; every item has quantity >= 1 and a non-negative price
//   - totalAmount == subtotal + deliveryFee + tax + serviceFee + tip - discount
//     at all times, recomputed whenever a monetary input changes
//   - status transitions follow the state machine defined in Status
//   - deliveredAt and cancelledAt are set exactly once, on the first
//     transition into their state
//   - feedback can be left once, and only on a delivered order
//
// The struct uses private fields so the invariants can only be touched
// through validated methods. Orders are never deleted; terminal states are
// retained for history.
type Order struct {
	id          kernel.UUID
	orderNumber kernel.OrderNumber

	userID    *kernel.UUID // nil when the order was placed as a guest
	userEmail string

	restaurantID    kernel.UUID
	restaurantName  string
	restaurantImage string

	items []Item

	deliveryType    DeliveryType
	deliveryAddress *Address
	contact         ContactInfo
	emailSource     EmailSource

	subtotal    kernel.Money
	deliveryFee kernel.Money
	tax         kernel.Money
	taxRate     decimal.Decimal
	serviceFee  kernel.Money
	tip         kernel.Money
	discount    kernel.Money
	totalAmount kernel.Money

	status             Status
	paymentMethod      PaymentMethod
	paymentStatus      PaymentStatus
	cancellationReason string

	createdAt         time.Time
	updatedAt         time.Time
	estimatedDelivery time.Time
	deliveredAt       *time.Time
	cancelledAt       *time.Time

	rated  bool
	rating int
	review string

	isConstructed bool
}

// NewOrder creates a new Order, validating the inputs in a fixed sequence
// and failing fast on the first violation so the caller gets one precise,
// field-attributed error:
//
//  1. items: non-empty, each properly constructed
//  2. restaurant: id and name present
//  3. delivery address: required and complete for courier delivery
//  4. notification email: contact email, or explicit fallback to the
//     account email — at least one must be present, and the one used is
//     recorded
//  5. payment method: one of the recognized values
//
// On success the totals are computed server-side and the order starts in
// the initial status implied by the payment method: cash on delivery starts
// pending, pre-paid starts confirmed.
func NewOrder(params NewOrderParams) (*Order, error) {
	if err := params.ID.Validate(); err != nil {
		return nil, err
	}
	if err := params.OrderNumber.Validate(); err != nil {
		return nil, err
	}

	if len(params.Items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	for _, item := range params.Items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	if err := params.RestaurantID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}
	if params.RestaurantName == "" {
		return nil, errs.NewValueIsRequiredError("restaurantName")
	}

	if err := params.DeliveryType.Validate(); err != nil {
		return nil, err
	}
	if params.DeliveryType == Delivery {
		if params.DeliveryAddress == nil {
			return nil, errs.NewValueIsRequiredError("deliveryAddress")
		}
		if err := params.DeliveryAddress.Validate(); err != nil {
			return nil, err
		}
	}

	if err := params.Contact.Validate(); err != nil {
		return nil, err
	}
	emailSource := EmailFromContact
	if params.Contact.Email() == "" {
		if params.UserEmail == "" {
			return nil, errs.NewValueIsRequiredError("contactInfo.email")
		}
		emailSource = EmailFromAccount
	}

	if err := params.PaymentMethod.Validate(); err != nil {
		return nil, err
	}

	if params.UserID != nil {
		if err := params.UserID.Validate(); err != nil {
			return nil, err
		}
	}

	o := &Order{
		id:                params.ID,
		orderNumber:       params.OrderNumber,
		userID:            params.UserID,
		userEmail:         params.UserEmail,
		restaurantID:      params.RestaurantID,
		restaurantName:    params.RestaurantName,
		restaurantImage:   params.RestaurantImage,
		items:             params.Items,
		deliveryType:      params.DeliveryType,
		deliveryAddress:   params.DeliveryAddress,
		contact:           params.Contact,
		emailSource:       emailSource,
		deliveryFee:       params.Pricing.DeliveryFee,
		taxRate:           params.Pricing.TaxRate,
		serviceFee:        params.Pricing.ServiceFee,
		tip:               params.Pricing.Tip,
		discount:          params.Pricing.Discount,
		status:            params.PaymentMethod.InitialOrderStatus(),
		paymentMethod:     params.PaymentMethod,
		paymentStatus:     PaymentPending,
		createdAt:         params.Now,
		updatedAt:         params.Now,
		estimatedDelivery: params.EstimatedDelivery,
		isConstructed:     true,
	}

	if err := o.recomputeTotals(); err != nil {
		return nil, err
	}

	return o, nil
}

// recomputeTotals derives the subtotal from the items, the tax from the
// subtotal and the tax rate, and the grand total from all components. A
// total that would be negative is a pricing-input fault and surfaces as an
// error, never a silent clamp. The computation is idempotent: calling it
// again with unchanged inputs yields identical amounts.
func (o *Order) recomputeTotals() error {
	subtotal := kernel.ZeroMoney()
	for _, item := range o.items {
		subtotal = subtotal.Add(item.Total())
	}

	o.subtotal = subtotal
	o.tax = subtotal.MulRate(o.taxRate)

	gross := subtotal.
		Add(o.deliveryFee).
		Add(o.tax).
		Add(o.serviceFee).
		Add(o.tip)

	total, err := gross.Sub(o.discount)
	if err != nil {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"totalAmount", gross.String(), "0", gross.String(), err)
	}

	o.totalAmount = total
	return nil
}

// TotalMatchesAdvisory reports whether a client-supplied total agrees with
// the server-computed one within one minor unit of rounding tolerance.
// A mismatch is worth logging but never blocks creation.
func (o *Order) TotalMatchesAdvisory(clientTotal kernel.Money) bool {
	return o.totalAmount.WithinMinorUnit(clientTotal)
}

// TransitionTo moves the order to newStatus according to the state machine.
// A same-state transition is a no-op, not an error. Entering Delivered sets
// deliveredAt exactly once; entering Cancelled sets cancelledAt exactly once.
func (o *Order) TransitionTo(newStatus Status, now time.Time) error {
	if newStatus == o.status {
		return nil
	}

	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	o.status = next
	o.updatedAt = now

	switch next {
	case Delivered:
		if o.deliveredAt == nil {
			deliveredAt := now
			o.deliveredAt = &deliveredAt
		}
	case Cancelled:
		o.markCancelled(now)
	default:
	}

	return nil
}

// Cancel performs a customer-initiated cancellation. It is allowed only
// while the order is pending or confirmed; once the kitchen is preparing,
// the customer can no longer back out.
func (o *Order) Cancel(reason string, now time.Time) error {
	if o.status == Cancelled {
		return nil
	}
	if !o.status.AllowsCustomerCancellation() {
		return errs.NewInvalidTransitionError(o.status.String(), Cancelled.String())
	}

	o.status = Cancelled
	o.cancellationReason = reason
	o.updatedAt = now
	o.markCancelled(now)
	return nil
}

func (o *Order) markCancelled(now time.Time) {
	if o.cancelledAt == nil {
		cancelledAt := now
		o.cancelledAt = &cancelledAt
	}
}

// Rate records post-delivery feedback. Allowed only once, and only when the
// order has been delivered. The rating must be between 1 and 5.
func (o *Order) Rate(rating int, review string, now time.Time) error {
	if o.status != Delivered {
		return errs.NewInvalidOperationErrorWithCause(
			"rate order", errors.New("order is not delivered"))
	}
	if o.rated {
		return errs.NewInvalidOperationErrorWithCause(
			"rate order", errors.New("order is already rated"))
	}
	if rating < 1 || rating > 5 {
		return errs.NewValueIsOutOfRangeError("rating", rating, 1, 5)
	}

	o.rated = true
	o.rating = rating
	o.review = review
	o.updatedAt = now
	return nil
}

// SetPaymentStatus assigns a new payment status. The payment lifecycle is
// independent of the delivery lifecycle, and the aggregate accepts any
// recognized value; sanity rules about payment transitions live in the
// application layer.
func (o *Order) SetPaymentStatus(newStatus PaymentStatus, now time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.paymentStatus = newStatus
	o.updatedAt = now
	return nil
}

// AssignOrderNumber replaces the order number. Used by the creation retry
// loop when the previous number collided at insert time; once persisted the
// number is immutable.
func (o *Order) AssignOrderNumber(number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.orderNumber = number
	return nil
}

// SetTip replaces the tip amount and recomputes the totals.
func (o *Order) SetTip(tip kernel.Money, now time.Time) error {
	if tip.IsEqual(o.tip) {
		return nil
	}
	o.tip = tip
	o.updatedAt = now
	return o.recomputeTotals()
}

// ApplyDiscount replaces the discount amount and recomputes the totals.
// A discount larger than the gross total is rejected.
func (o *Order) ApplyDiscount(discount kernel.Money, now time.Time) error {
	if discount.IsEqual(o.discount) {
		return nil
	}
	previous := o.discount
	o.discount = discount
	if err := o.recomputeTotals(); err != nil {
		o.discount = previous
		_ = o.recomputeTotals()
		return err
	}
	o.updatedAt = now
	return nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. Repositories call this before persisting and
// after rehydrating to guarantee data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// IsOwnedBy reports whether the given user placed this order. Guest orders
// have no owning user id and are matched by email at the application layer.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.userID != nil && o.userID.IsEqual(userID)
}

// ID returns the repository-assigned unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// OrderNumber returns the human-readable unique identifier.
func (o *Order) OrderNumber() kernel.OrderNumber { return o.orderNumber }

// UserID returns the owning user's id, or nil for guest checkout.
func (o *Order) UserID() *kernel.UUID { return o.userID }

// UserEmail returns the account email associated with the order.
func (o *Order) UserEmail() string { return o.userEmail }

// RestaurantID returns the restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID { return o.restaurantID }

// RestaurantName returns the restaurant name snapshot.
func (o *Order) RestaurantName() string { return o.restaurantName }

// RestaurantImage returns the restaurant image reference.
func (o *Order) RestaurantImage() string { return o.restaurantImage }

// Items returns the order lines.
func (o *Order) Items() []Item { return o.items }

// DeliveryType returns whether the order is delivered or picked up.
func (o *Order) DeliveryType() DeliveryType { return o.deliveryType }

// DeliveryAddress returns the delivery destination, or nil for pickup.
func (o *Order) DeliveryAddress() *Address { return o.deliveryAddress }

// Contact returns the order's contact details.
func (o *Order) Contact() ContactInfo { return o.contact }

// EmailSource reports which email address is used for notification.
func (o *Order) EmailSource() EmailSource { return o.emailSource }

// NotificationEmail returns the effective email used for notifications.
func (o *Order) NotificationEmail() string {
	if o.emailSource == EmailFromAccount {
		return o.userEmail
	}
	return o.contact.Email()
}

// Subtotal returns the sum of all item totals.
func (o *Order) Subtotal() kernel.Money { return o.subtotal }

// DeliveryFee returns the delivery fee component.
func (o *Order) DeliveryFee() kernel.Money { return o.deliveryFee }

// Tax returns the tax component.
func (o *Order) Tax() kernel.Money { return o.tax }

// TaxRate returns the fractional tax rate applied to the subtotal.
func (o *Order) TaxRate() decimal.Decimal { return o.taxRate }

// ServiceFee returns the service fee component.
func (o *Order) ServiceFee() kernel.Money { return o.serviceFee }

// Tip returns the tip component.
func (o *Order) Tip() kernel.Money { return o.tip }

// Discount returns the subtracted discount amount.
func (o *Order) Discount() kernel.Money { return o.discount }

// TotalAmount returns the authoritative grand total.
func (o *Order) TotalAmount() kernel.Money { return o.totalAmount }

// Status returns the current delivery lifecycle status.
func (o *Order) Status() Status { return o.status }

// PaymentMethod returns how the customer pays.
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }

// PaymentStatus returns the payment lifecycle status.
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }

// CancellationReason returns the reason given at cancellation time.
func (o *Order) CancellationReason() string { return o.cancellationReason }

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns when the order was last modified.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// EstimatedDelivery returns the promised delivery time.
func (o *Order) EstimatedDelivery() time.Time { return o.estimatedDelivery }

// DeliveredAt returns when the order was delivered, or nil.
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }

// CancelledAt returns when the order was cancelled, or nil.
func (o *Order) CancelledAt() *time.Time { return o.cancelledAt }

// Rated reports whether feedback was left.
func (o *Order) Rated() bool { return o.rated }

// Rating returns the 1-5 feedback score, valid only when Rated is true.
func (o *Order) Rating() int { return o.rating }

// Review returns the feedback text.
func (o *Order) Review() string { return o.review }

// RestoreOrderParams bundles the full persisted state for rehydration.
type RestoreOrderParams struct {
	ID                 kernel.UUID
	OrderNumber        kernel.OrderNumber
	UserID             *kernel.UUID
	UserEmail          string
	RestaurantID       kernel.UUID
	RestaurantName     string
	RestaurantImage    string
	Items              []Item
	DeliveryType       DeliveryType
	DeliveryAddress    *Address
	Contact            ContactInfo
	EmailSource        EmailSource
	DeliveryFee        kernel.Money
	Tax                kernel.Money
	TaxRate            decimal.Decimal
	ServiceFee         kernel.Money
	Tip                kernel.Money
	Discount           kernel.Money
	Status             Status
	PaymentMethod      PaymentMethod
	PaymentStatus      PaymentStatus
	CancellationReason string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	EstimatedDelivery  time.Time
	DeliveredAt        *time.Time
	CancelledAt        *time.Time
	Rated              bool
	Rating             int
	Review             string
}

// RestoreOrder reconstructs an Order from persistence. It validates
// identity and enumerated fields, then recomputes the subtotal and total
// from the stored components; the stored tax amount is kept as-is since
// the tax rate in force at creation time is authoritative.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	if err := params.ID.Validate(); err != nil {
		return nil, err
	}
	if err := params.OrderNumber.Validate(); err != nil {
		return nil, err
	}
	if len(params.Items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	if err := params.Status.Validate(); err != nil {
		return nil, err
	}
	if err := params.PaymentMethod.Validate(); err != nil {
		return nil, err
	}
	if err := params.PaymentStatus.Validate(); err != nil {
		return nil, err
	}
	if err := params.DeliveryType.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		id:                 params.ID,
		orderNumber:        params.OrderNumber,
		userID:             params.UserID,
		userEmail:          params.UserEmail,
		restaurantID:       params.RestaurantID,
		restaurantName:     params.RestaurantName,
		restaurantImage:    params.RestaurantImage,
		items:              params.Items,
		deliveryType:       params.DeliveryType,
		deliveryAddress:    params.DeliveryAddress,
		contact:            params.Contact,
		emailSource:        params.EmailSource,
		deliveryFee:        params.DeliveryFee,
		taxRate:            params.TaxRate,
		serviceFee:         params.ServiceFee,
		tip:                params.Tip,
		discount:           params.Discount,
		status:             params.Status,
		paymentMethod:      params.PaymentMethod,
		paymentStatus:      params.PaymentStatus,
		cancellationReason: params.CancellationReason,
		createdAt:          params.CreatedAt,
		updatedAt:          params.UpdatedAt,
		estimatedDelivery:  params.EstimatedDelivery,
		deliveredAt:        params.DeliveredAt,
		cancelledAt:        params.CancelledAt,
		rated:              params.Rated,
		rating:             params.Rating,
		review:             params.Review,
		isConstructed:      true,
	}

	subtotal := kernel.ZeroMoney()
	for _, item := range o.items {
		subtotal = subtotal.Add(item.Total())
	}
	o.subtotal = subtotal
	o.tax = params.Tax

	gross := subtotal.
		Add(o.deliveryFee).
		Add(o.tax).
		Add(o.serviceFee).
		Add(o.tip)
	total, err := gross.Sub(o.discount)
	if err != nil {
		return nil, ErrTotalsDoNotReconcile
	}
	o.totalAmount = total

	return o, nil
}
