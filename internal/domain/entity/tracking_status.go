package entity

// StatusInfo carries the display metadata shown on tracking timelines
type StatusInfo struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	LabelEn string `json:"label_en"`
	Icon    string `json:"icon"`
	Color   string `json:"color"`
}

// Tracking status keys shared by both reference types
const (
	StatusOrderCreated     = "order_created"
	StatusPaymentConfirmed = "payment_confirmed"
	StatusCompleted        = "completed"
	StatusCancelled        = "cancelled"
)

// Home-test specific status keys
const (
	StatusTechnicianAssigned = "technician_assigned"
	StatusTechnicianOnWay    = "technician_on_way"
	StatusSampleCollected    = "sample_collected"
	StatusSampleInAnalysis   = "sample_in_analysis"
	StatusResultsReady       = "results_ready"
	StatusRescheduled        = "rescheduled"
)

// Product-order specific status keys
const (
	StatusPreparing      = "preparing"
	StatusShipped        = "shipped"
	StatusOutForDelivery = "out_for_delivery"
	StatusDelivered      = "delivered"
	StatusReturned       = "returned"
	StatusRefunded       = "refunded"
)

// HomeTestStatuses is the display catalog for home lab test trackings
var HomeTestStatuses = map[string]StatusInfo{
	StatusOrderCreated:       {Key: StatusOrderCreated, Label: "تم إنشاء الطلب", LabelEn: "Order Created", Icon: "ClipboardList", Color: "blue"},
	StatusPaymentConfirmed:   {Key: StatusPaymentConfirmed, Label: "تم تأكيد الدفع", LabelEn: "Payment Confirmed", Icon: "CreditCard", Color: "green"},
	StatusTechnicianAssigned: {Key: StatusTechnicianAssigned, Label: "تم تعيين الفني", LabelEn: "Technician Assigned", Icon: "UserCheck", Color: "blue"},
	StatusTechnicianOnWay:    {Key: StatusTechnicianOnWay, Label: "الفني في الطريق", LabelEn: "Technician On the Way", Icon: "Navigation", Color: "orange"},
	StatusSampleCollected:    {Key: StatusSampleCollected, Label: "تم جمع العينة", LabelEn: "Sample Collected", Icon: "TestTube", Color: "purple"},
	StatusSampleInAnalysis:   {Key: StatusSampleInAnalysis, Label: "العينة قيد التحليل", LabelEn: "Sample In Analysis", Icon: "FlaskConical", Color: "indigo"},
	StatusResultsReady:       {Key: StatusResultsReady, Label: "النتائج جاهزة", LabelEn: "Results Ready", Icon: "FileCheck", Color: "teal"},
	StatusCompleted:          {Key: StatusCompleted, Label: "مكتمل", LabelEn: "Completed", Icon: "CheckCircle2", Color: "green"},
	StatusCancelled:          {Key: StatusCancelled, Label: "ملغى", LabelEn: "Cancelled", Icon: "XCircle", Color: "red"},
	StatusRescheduled:        {Key: StatusRescheduled, Label: "تم إعادة الجدولة", LabelEn: "Rescheduled", Icon: "CalendarClock", Color: "yellow"},
}

// ProductOrderStatuses is the display catalog for pharmacy order trackings
var ProductOrderStatuses = map[string]StatusInfo{
	StatusOrderCreated:     {Key: StatusOrderCreated, Label: "تم إنشاء الطلب", LabelEn: "Order Created", Icon: "ShoppingCart", Color: "blue"},
	StatusPaymentConfirmed: {Key: StatusPaymentConfirmed, Label: "تم تأكيد الدفع", LabelEn: "Payment Confirmed", Icon: "CreditCard", Color: "green"},
	StatusPreparing:        {Key: StatusPreparing, Label: "جاري التجهيز", LabelEn: "Preparing Order", Icon: "Package", Color: "orange"},
	StatusShipped:          {Key: StatusShipped, Label: "تم الشحن", LabelEn: "Shipped", Icon: "Truck", Color: "blue"},
	StatusOutForDelivery:   {Key: StatusOutForDelivery, Label: "في الطريق للتوصيل", LabelEn: "Out for Delivery", Icon: "Navigation", Color: "purple"},
	StatusDelivered:        {Key: StatusDelivered, Label: "تم التوصيل", LabelEn: "Delivered", Icon: "PackageCheck", Color: "green"},
	StatusCompleted:        {Key: StatusCompleted, Label: "مكتمل", LabelEn: "Completed", Icon: "CheckCircle2", Color: "green"},
	StatusCancelled:        {Key: StatusCancelled, Label: "ملغى", LabelEn: "Cancelled", Icon: "XCircle", Color: "red"},
	StatusReturned:         {Key: StatusReturned, Label: "مرتجع", LabelEn: "Returned", Icon: "RotateCcw", Color: "orange"},
	StatusRefunded:         {Key: StatusRefunded, Label: "تم الاسترداد", LabelEn: "Refunded", Icon: "RefreshCw", Color: "gray"},
}

// GetStatusInfo returns display metadata for a status, or nil when unknown
func GetStatusInfo(referenceType ReferenceType, status string) *StatusInfo {
	catalog := ProductOrderStatuses
	if referenceType == ReferenceHomeTest {
		catalog = HomeTestStatuses
	}
	if info, ok := catalog[status]; ok {
		return &info
	}
	return nil
}

// StatusCatalog returns every known status for a reference type
func StatusCatalog(referenceType ReferenceType) []StatusInfo {
	var keys []string
	if referenceType == ReferenceHomeTest {
		keys = append(OrderedStatuses(ReferenceHomeTest), StatusCancelled, StatusRescheduled)
	} else {
		keys = append(OrderedStatuses(ReferenceProductOrder), StatusCancelled, StatusReturned, StatusRefunded)
	}
	infos := make([]StatusInfo, 0, len(keys))
	for _, key := range keys {
		if info := GetStatusInfo(referenceType, key); info != nil {
			infos = append(infos, *info)
		}
	}
	return infos
}

// OrderedStatuses returns the happy-path progression shown on timelines.
// Cancellation and the other exceptional statuses are not part of it.
func OrderedStatuses(referenceType ReferenceType) []string {
	if referenceType == ReferenceHomeTest {
		return []string{
			StatusOrderCreated,
			StatusPaymentConfirmed,
			StatusTechnicianAssigned,
			StatusTechnicianOnWay,
			StatusSampleCollected,
			StatusSampleInAnalysis,
			StatusResultsReady,
			StatusCompleted,
		}
	}
	return []string{
		StatusOrderCreated,
		StatusPaymentConfirmed,
		StatusPreparing,
		StatusShipped,
		StatusOutForDelivery,
		StatusDelivered,
		StatusCompleted,
	}
}
