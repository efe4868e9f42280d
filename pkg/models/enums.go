package models

import "slices"

type PassengerType string

const (
	PassengerTypeAdult    PassengerType = "ADT"
	PassengerTypeChild    PassengerType = "CHD"
	PassengerTypeInfant   PassengerType = "INF"
	PassengerTypeSenior   PassengerType = "SRC"
	PassengerTypeStudent  PassengerType = "STU"
	PassengerTypeYouth    PassengerType = "YTH"
	PassengerTypeMilitary PassengerType = "MIL"
)

var passengerTypes = []PassengerType{
	PassengerTypeAdult, PassengerTypeChild, PassengerTypeInfant, PassengerTypeSenior,
	PassengerTypeStudent, PassengerTypeYouth, PassengerTypeMilitary,
}

func PassengerTypes() []PassengerType { return slices.Clone(passengerTypes) }

type CabinClass string

const (
	CabinClassEconomy        CabinClass = "Economy"
	CabinClassPremiumEconomy CabinClass = "PremiumEconomy"
	CabinClassBusiness       CabinClass = "Business"
	CabinClassFirst          CabinClass = "First"
)

var cabinClasses = []CabinClass{CabinClassEconomy, CabinClassPremiumEconomy, CabinClassBusiness, CabinClassFirst}

func CabinClasses() []CabinClass { return slices.Clone(cabinClasses) }

type LoyaltyFilter string

const (
	LoyaltyMonetaryOnly      LoyaltyFilter = "MonetaryOnly"
	LoyaltyPointsOnly        LoyaltyFilter = "PointsOnly"
	LoyaltyPointsAndMonetary LoyaltyFilter = "PointsAndMonetary"
	LoyaltyPreserveCurrent   LoyaltyFilter = "PreserveCurrent"
)

var loyaltyFilters = []LoyaltyFilter{LoyaltyMonetaryOnly, LoyaltyPointsOnly, LoyaltyPointsAndMonetary, LoyaltyPreserveCurrent}

func LoyaltyFilters() []LoyaltyFilter { return slices.Clone(loyaltyFilters) }

type TaxesAndFeesMode string

const (
	TaxesAndFeesNone    TaxesAndFeesMode = "None"
	TaxesAndFeesTaxes   TaxesAndFeesMode = "Taxes"
	TaxesAndFeesTaxFees TaxesAndFeesMode = "TaxesAndFees"
	TaxesAndFeesAll     TaxesAndFeesMode = "AllTaxesAndFees"
)

var taxesAndFeesModes = []TaxesAndFeesMode{TaxesAndFeesNone, TaxesAndFeesTaxes, TaxesAndFeesTaxFees, TaxesAndFeesAll}

func TaxesAndFeesModes() []TaxesAndFeesMode { return slices.Clone(taxesAndFeesModes) }

type JourneyType string

const (
	JourneyTypeDirect     JourneyType = "Direct"
	JourneyTypeNonstop    JourneyType = "Nonstop"
	JourneyTypeConnecting JourneyType = "Connecting"
	JourneyTypeAll        JourneyType = "All"
)

var journeyTypes = []JourneyType{JourneyTypeDirect, JourneyTypeNonstop, JourneyTypeConnecting, JourneyTypeAll}

func JourneyTypes() []JourneyType { return slices.Clone(journeyTypes) }

type SeatCharacteristic string

const (
	SeatWindow       SeatCharacteristic = "Window"
	SeatAisle        SeatCharacteristic = "Aisle"
	SeatMiddle       SeatCharacteristic = "Middle"
	SeatExtraLegroom SeatCharacteristic = "ExtraLegroom"
	SeatPremium      SeatCharacteristic = "Premium"
	SeatBlocked      SeatCharacteristic = "Blocked"
	SeatOccupied     SeatCharacteristic = "Occupied"
	SeatInfant       SeatCharacteristic = "Infant"
	SeatEmergency    SeatCharacteristic = "Emergency"
	SeatRestricted   SeatCharacteristic = "Restricted"
)

var seatCharacteristics = []SeatCharacteristic{
	SeatWindow, SeatAisle, SeatMiddle, SeatExtraLegroom, SeatPremium,
	SeatBlocked, SeatOccupied, SeatInfant, SeatEmergency, SeatRestricted,
}

func SeatCharacteristics() []SeatCharacteristic { return slices.Clone(seatCharacteristics) }

type SeatPosition string

const (
	SeatPositionWindow SeatPosition = "Window"
	SeatPositionAisle  SeatPosition = "Aisle"
	SeatPositionMiddle SeatPosition = "Middle"
	SeatPositionAny    SeatPosition = "Any"
)

var seatPositions = []SeatPosition{SeatPositionWindow, SeatPositionAisle, SeatPositionMiddle, SeatPositionAny}

func SeatPositions() []SeatPosition { return slices.Clone(seatPositions) }

type BaggageType string

const (
	BaggageChecked  BaggageType = "Checked"
	BaggageCarryOn  BaggageType = "CarryOn"
	BaggagePersonal BaggageType = "Personal"
	BaggageExcess   BaggageType = "Excess"
	BaggageOversize BaggageType = "Oversize"
	BaggageSports   BaggageType = "Sports"
)

var baggageTypes = []BaggageType{BaggageChecked, BaggageCarryOn, BaggagePersonal, BaggageExcess, BaggageOversize, BaggageSports}

func BaggageTypes() []BaggageType { return slices.Clone(baggageTypes) }

// MaxWeightKg is the heaviest bag of this type the platform accepts.
func (t BaggageType) MaxWeightKg() float64 {
	switch t {
	case BaggageCarryOn:
		return 10
	case BaggagePersonal:
		return 5
	default:
		return 50
	}
}

type WeightUnit string

const (
	WeightKilograms WeightUnit = "kg"
	WeightPounds    WeightUnit = "lb"
)

var weightUnits = []WeightUnit{WeightKilograms, WeightPounds}

func WeightUnits() []WeightUnit { return slices.Clone(weightUnits) }

type DimensionUnit string

const (
	DimensionCentimeters DimensionUnit = "cm"
	DimensionInches      DimensionUnit = "in"
)

var dimensionUnits = []DimensionUnit{DimensionCentimeters, DimensionInches}

func DimensionUnits() []DimensionUnit { return slices.Clone(dimensionUnits) }

type SpecialHandling string

const (
	HandlingFragile    SpecialHandling = "Fragile"
	HandlingPerishable SpecialHandling = "Perishable"
	HandlingValuable   SpecialHandling = "Valuable"
	HandlingLiveAnimal SpecialHandling = "LiveAnimal"
	HandlingMedical    SpecialHandling = "Medical"
	HandlingWheelchair SpecialHandling = "Wheelchair"
	HandlingPriority   SpecialHandling = "Priority"
	HandlingHeavy      SpecialHandling = "Heavy"
)

var specialHandlings = []SpecialHandling{
	HandlingFragile, HandlingPerishable, HandlingValuable, HandlingLiveAnimal,
	HandlingMedical, HandlingWheelchair, HandlingPriority, HandlingHeavy,
}

func SpecialHandlings() []SpecialHandling { return slices.Clone(specialHandlings) }

type CoverageType string

const (
	CoverageBasic            CoverageType = "Basic"
	CoverageStandard         CoverageType = "Standard"
	CoveragePremium          CoverageType = "Premium"
	CoverageComprehensive    CoverageType = "Comprehensive"
	CoverageTripCancellation CoverageType = "TripCancellation"
	CoverageMedical          CoverageType = "Medical"
	CoverageBaggage          CoverageType = "Baggage"
)

var coverageTypes = []CoverageType{
	CoverageBasic, CoverageStandard, CoveragePremium, CoverageComprehensive,
	CoverageTripCancellation, CoverageMedical, CoverageBaggage,
}

func CoverageTypes() []CoverageType { return slices.Clone(coverageTypes) }

type BeneficiaryRelationship string

const (
	RelationshipSpouse  BeneficiaryRelationship = "Spouse"
	RelationshipChild   BeneficiaryRelationship = "Child"
	RelationshipParent  BeneficiaryRelationship = "Parent"
	RelationshipSibling BeneficiaryRelationship = "Sibling"
	RelationshipPartner BeneficiaryRelationship = "Partner"
	RelationshipOther   BeneficiaryRelationship = "Other"
)

var beneficiaryRelationships = []BeneficiaryRelationship{
	RelationshipSpouse, RelationshipChild, RelationshipParent,
	RelationshipSibling, RelationshipPartner, RelationshipOther,
}

func BeneficiaryRelationships() []BeneficiaryRelationship {
	return slices.Clone(beneficiaryRelationships)
}

type MessageType string

const (
	MessageEmail        MessageType = "Email"
	MessageSms          MessageType = "Sms"
	MessageNotification MessageType = "Notification"
	MessageTeletype     MessageType = "Teletype"
)

var messageTypes = []MessageType{MessageEmail, MessageSms, MessageNotification, MessageTeletype}

func MessageTypes() []MessageType { return slices.Clone(messageTypes) }

type MessagePriority string

const (
	PriorityLow    MessagePriority = "Low"
	PriorityNormal MessagePriority = "Normal"
	PriorityHigh   MessagePriority = "High"
	PriorityUrgent MessagePriority = "Urgent"
)

var messagePriorities = []MessagePriority{PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent}

func MessagePriorities() []MessagePriority { return slices.Clone(messagePriorities) }

type MessageStatus string

const (
	MessageUnread   MessageStatus = "Unread"
	MessageRead     MessageStatus = "Read"
	MessageArchived MessageStatus = "Archived"
)

var messageStatuses = []MessageStatus{MessageUnread, MessageRead, MessageArchived}

func MessageStatuses() []MessageStatus { return slices.Clone(messageStatuses) }

type CommentType string

const (
	CommentDefault   CommentType = "Default"
	CommentItinerary CommentType = "Itinerary"
	CommentManifest  CommentType = "Manifest"
	CommentAlert     CommentType = "Alert"
	CommentArchive   CommentType = "Archive"
)

var commentTypes = []CommentType{CommentDefault, CommentItinerary, CommentManifest, CommentAlert, CommentArchive}

func CommentTypes() []CommentType { return slices.Clone(commentTypes) }

type PhoneType string

const (
	PhoneHome   PhoneType = "Home"
	PhoneWork   PhoneType = "Work"
	PhoneMobile PhoneType = "Mobile"
	PhoneFax    PhoneType = "Fax"
	PhoneOther  PhoneType = "Other"
)

var phoneTypes = []PhoneType{PhoneHome, PhoneWork, PhoneMobile, PhoneFax, PhoneOther}

func PhoneTypes() []PhoneType { return slices.Clone(phoneTypes) }

type Gender string

const (
	GenderMale        Gender = "Male"
	GenderFemale      Gender = "Female"
	GenderUnspecified Gender = "Unspecified"
)

var genders = []Gender{GenderMale, GenderFemale, GenderUnspecified}

func Genders() []Gender { return slices.Clone(genders) }

type DocumentType string

const (
	DocumentPassport        DocumentType = "Passport"
	DocumentVisa            DocumentType = "Visa"
	DocumentNationalID      DocumentType = "NationalId"
	DocumentResidencePermit DocumentType = "ResidencePermit"
)

var documentTypes = []DocumentType{DocumentPassport, DocumentVisa, DocumentNationalID, DocumentResidencePermit}

func DocumentTypes() []DocumentType { return slices.Clone(documentTypes) }

type DietaryPreference string

const (
	DietVegetarian DietaryPreference = "Vegetarian"
	DietVegan      DietaryPreference = "Vegan"
	DietHalal      DietaryPreference = "Halal"
	DietKosher     DietaryPreference = "Kosher"
	DietGlutenFree DietaryPreference = "GlutenFree"
	DietDiabetic   DietaryPreference = "Diabetic"
	DietLowSodium  DietaryPreference = "LowSodium"
	DietChild      DietaryPreference = "Child"
)

var dietaryPreferences = []DietaryPreference{
	DietVegetarian, DietVegan, DietHalal, DietKosher,
	DietGlutenFree, DietDiabetic, DietLowSodium, DietChild,
}

func DietaryPreferences() []DietaryPreference { return slices.Clone(dietaryPreferences) }

type UserStatus string

const (
	UserActive    UserStatus = "Active"
	UserSuspended UserStatus = "Suspended"
	UserPending   UserStatus = "Pending"
)

var userStatuses = []UserStatus{UserActive, UserSuspended, UserPending}

func UserStatuses() []UserStatus { return slices.Clone(userStatuses) }

var knownSsrCodes = []string{
	"WCHR", "WCHS", "WCHC", "BLND", "DEAF", "DPNA", "MEDA", "PETC", "AVIH", "UMNR", "BSCT",
	"MAAS", "VGML", "KSML", "MOML", "CHML", "DBML", "GFML", "BIKE", "SPEQ", "XBAG", "FRAG",
}

// KnownSsrCodes lists the special service request codes the SDK recognises.
// The platform may define more.
func KnownSsrCodes() []string { return slices.Clone(knownSsrCodes) }

// Queue event types. Zero is the platform's "Default" and is never accepted.
const (
	QueueEventTypeDefault     = 0
	QueueEventTypeManualEntry = 1
	QueueEventTypeScheduleChg = 20
	QueueEventTypeMaximum     = 100
)
