package handler

// Export for testing
type EntryResponse = entryResponse
type BreadcrumbResponse = breadcrumbResponse
type ListingResponse = listingResponse
type NotificationResponse = notificationResponse

var WriteServiceError = writeServiceError
var IDPtrToString = idPtrToString
var Itoa = itoa
var ParseOptionalID = parseOptionalID
