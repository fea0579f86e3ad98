package models

// OrderStatus is the closed set of lifecycle states an order moves through.
// The ids match the backend status catalogue; anything else maps to
// StatusUnknown and gets no actions.
type OrderStatus int

const (
	StatusUnknown         OrderStatus = 0
	StatusPending         OrderStatus = 1 // placed, waiting for the store
	StatusAwaitingPickup  OrderStatus = 2 // accepted, waiting for the carrier
	StatusShipping        OrderStatus = 3
	StatusCancelRequested OrderStatus = 4
	StatusCancelled       OrderStatus = 5
	StatusCompleted       OrderStatus = 6
)

// ParseStatus clamps an id from the wire onto the closed set.
func ParseStatus(id int) OrderStatus {
	if id >= int(StatusPending) && id <= int(StatusCompleted) {
		return OrderStatus(id)
	}
	return StatusUnknown
}

var statusLabels = map[OrderStatus]string{
	StatusPending:         "Chờ xác nhận",
	StatusAwaitingPickup:  "Chờ lấy hàng",
	StatusShipping:        "Đang giao hàng",
	StatusCancelRequested: "Yêu cầu hủy",
	StatusCancelled:       "Đã hủy",
	StatusCompleted:       "Hoàn thành",
}

var statusColors = map[OrderStatus]string{
	StatusPending:         "orange",
	StatusAwaitingPickup:  "blue",
	StatusShipping:        "cyan",
	StatusCancelRequested: "purple",
	StatusCancelled:       "red",
	StatusCompleted:       "green",
}

func (s OrderStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return "Không xác định"
}

// Color is the badge color the storefront tags the status with.
func (s OrderStatus) Color() string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return "default"
}

// Role distinguishes which side of an order is asking for actions.
type Role int

const (
	RoleCustomer Role = iota
	RoleStore
)

// StatusAction is one transition a role may request on an order.
type StatusAction struct {
	Target OrderStatus
	Name   string
	Color  string
}

var customerActions = map[OrderStatus][]StatusAction{
	StatusPending: {
		{Target: StatusCancelRequested, Name: "Yêu cầu hủy đơn", Color: "red"},
	},
	StatusAwaitingPickup: {
		{Target: StatusCancelRequested, Name: "Yêu cầu hủy đơn", Color: "red"},
	},
	StatusShipping: {
		{Target: StatusCompleted, Name: "Đã nhận được hàng", Color: "green"},
	},
}

var storeActions = map[OrderStatus][]StatusAction{
	StatusPending: {
		{Target: StatusAwaitingPickup, Name: "Xác nhận đơn", Color: "blue"},
		{Target: StatusCancelled, Name: "Từ chối đơn", Color: "red"},
	},
	StatusAwaitingPickup: {
		{Target: StatusShipping, Name: "Giao cho đơn vị vận chuyển", Color: "cyan"},
	},
	StatusCancelRequested: {
		{Target: StatusAwaitingPickup, Name: "Từ chối hủy", Color: "blue"},
		{Target: StatusCancelled, Name: "Chấp nhận hủy", Color: "red"},
	},
}

// AvailableActions returns the transitions the role may request from the
// given state. Unknown states yield an empty set, never a failure.
func AvailableActions(role Role, s OrderStatus) []StatusAction {
	var table map[OrderStatus][]StatusAction
	switch role {
	case RoleStore:
		table = storeActions
	default:
		table = customerActions
	}
	actions := table[s]
	out := make([]StatusAction, len(actions))
	copy(out, actions)
	return out
}

// StatusIndex resolves the label strings order payloads carry back onto the
// closed enum. It is built once per session from the status catalogue
// endpoint, so renamed labels upstream keep resolving correctly.
type StatusIndex struct {
	byName map[string]OrderStatus
}

func NewStatusIndex(records []OrderStatusRecord) *StatusIndex {
	idx := &StatusIndex{byName: make(map[string]OrderStatus, len(records))}
	for _, r := range records {
		idx.byName[r.StatusName] = ParseStatus(r.ID)
	}
	return idx
}

// Resolve maps a status label to its enum value, StatusUnknown when the
// label is not in the catalogue.
func (idx *StatusIndex) Resolve(name string) OrderStatus {
	if idx == nil {
		return StatusUnknown
	}
	return idx.byName[name]
}
