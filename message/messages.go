package message

import "gtpv1c/ie"

// Message type codes (TS 29.060 §6 / TS 32.295 §6.2). Every code the
// dispatcher recognises has a Template entry, even where that template is
// empty and the whole IE sequence decodes as anonymous trailing IEs
// (§4.4 step 6) — acceptable for messages this codec does not need to
// inspect field by field.
const (
	TypeEchoRequest  uint8 = 1
	TypeEchoResponse uint8 = 2
	TypeVersionNotSupported uint8 = 3

	TypeNodeAliveRequest  uint8 = 4
	TypeNodeAliveResponse uint8 = 5
	TypeRedirectionRequest  uint8 = 6
	TypeRedirectionResponse uint8 = 7

	TypeCreatePDPContextRequest  uint8 = 16
	TypeCreatePDPContextResponse uint8 = 17
	TypeUpdatePDPContextRequest  uint8 = 18
	TypeUpdatePDPContextResponse uint8 = 19
	TypeDeletePDPContextRequest  uint8 = 20
	TypeDeletePDPContextResponse uint8 = 21
	TypeInitiatePDPContextActivationRequest  uint8 = 22
	TypeInitiatePDPContextActivationResponse uint8 = 23

	TypeErrorIndication uint8 = 26
	TypePDUNotificationRequest       uint8 = 27
	TypePDUNotificationResponse      uint8 = 28
	TypePDUNotificationRejectRequest  uint8 = 29
	TypePDUNotificationRejectResponse uint8 = 30
	TypeSupportedExtensionHeadersNotification uint8 = 31

	TypeSendRouteingInfoRequest  uint8 = 32
	TypeSendRouteingInfoResponse uint8 = 33
	TypeFailureReportRequest  uint8 = 34
	TypeFailureReportResponse uint8 = 35
	TypeNoteMSPresentRequest  uint8 = 36
	TypeNoteMSPresentResponse uint8 = 37

	TypeIdentificationRequest  uint8 = 48
	TypeIdentificationResponse uint8 = 49
	TypeSGSNContextRequest  uint8 = 50
	TypeSGSNContextResponse uint8 = 51
	TypeSGSNContextAcknowledge uint8 = 52
	TypeForwardRelocationRequest  uint8 = 53
	TypeForwardRelocationResponse uint8 = 54
	TypeForwardRelocationComplete uint8 = 55
	TypeRelocationCancelRequest  uint8 = 56
	TypeRelocationCancelResponse uint8 = 57
	TypeForwardSRNSContext uint8 = 58
	TypeForwardRelocationCompleteAcknowledge uint8 = 59
	TypeForwardSRNSContextAcknowledge uint8 = 60
	TypeUERegistrationQueryRequest  uint8 = 61
	TypeUERegistrationQueryResponse uint8 = 62

	TypeRANInformationRelay uint8 = 70

	TypeMBMSNotificationRequest  uint8 = 96
	TypeMBMSNotificationResponse uint8 = 97
	TypeMBMSNotificationRejectRequest  uint8 = 98
	TypeMBMSNotificationRejectResponse uint8 = 99
	TypeCreateMBMSContextRequest  uint8 = 100
	TypeCreateMBMSContextResponse uint8 = 101
	TypeUpdateMBMSContextRequest  uint8 = 102
	TypeUpdateMBMSContextResponse uint8 = 103
	TypeDeleteMBMSContextRequest  uint8 = 104
	TypeDeleteMBMSContextResponse uint8 = 105
	TypeMBMSRegistrationRequest  uint8 = 112
	TypeMBMSRegistrationResponse uint8 = 113
	TypeMBMSDeRegistrationRequest  uint8 = 114
	TypeMBMSDeRegistrationResponse uint8 = 115
	TypeMBMSSessionStartRequest  uint8 = 116
	TypeMBMSSessionStartResponse uint8 = 117
	TypeMBMSSessionStopRequest  uint8 = 118
	TypeMBMSSessionStopResponse uint8 = 119
	TypeMBMSSessionUpdateRequest  uint8 = 120
	TypeMBMSSessionUpdateResponse uint8 = 121

	TypeMSInfoChangeNotificationRequest  uint8 = 128
	TypeMSInfoChangeNotificationResponse uint8 = 129

	TypeDataRecordTransferRequest  uint8 = 240
	TypeDataRecordTransferResponse uint8 = 241

	TypeEndMarker uint8 = 254
	TypeGPDU      uint8 = 255
)

// Names maps every declared message type to its display name, for
// logging and the CLI dump.
var Names = map[uint8]string{
	TypeEchoRequest: "EchoRequest", TypeEchoResponse: "EchoResponse",
	TypeVersionNotSupported: "VersionNotSupported",
	TypeNodeAliveRequest: "NodeAliveRequest", TypeNodeAliveResponse: "NodeAliveResponse",
	TypeRedirectionRequest: "RedirectionRequest", TypeRedirectionResponse: "RedirectionResponse",
	TypeCreatePDPContextRequest: "CreatePDPContextRequest", TypeCreatePDPContextResponse: "CreatePDPContextResponse",
	TypeUpdatePDPContextRequest: "UpdatePDPContextRequest", TypeUpdatePDPContextResponse: "UpdatePDPContextResponse",
	TypeDeletePDPContextRequest: "DeletePDPContextRequest", TypeDeletePDPContextResponse: "DeletePDPContextResponse",
	TypeInitiatePDPContextActivationRequest: "InitiatePDPContextActivationRequest", TypeInitiatePDPContextActivationResponse: "InitiatePDPContextActivationResponse",
	TypeErrorIndication: "ErrorIndication",
	TypePDUNotificationRequest: "PDUNotificationRequest", TypePDUNotificationResponse: "PDUNotificationResponse",
	TypePDUNotificationRejectRequest: "PDUNotificationRejectRequest", TypePDUNotificationRejectResponse: "PDUNotificationRejectResponse",
	TypeSupportedExtensionHeadersNotification: "SupportedExtensionHeadersNotification",
	TypeSendRouteingInfoRequest: "SendRouteingInfoForGPRSRequest", TypeSendRouteingInfoResponse: "SendRouteingInfoForGPRSResponse",
	TypeFailureReportRequest: "FailureReportRequest", TypeFailureReportResponse: "FailureReportResponse",
	TypeNoteMSPresentRequest: "NoteMSGPRSPresentRequest", TypeNoteMSPresentResponse: "NoteMSGPRSPresentResponse",
	TypeIdentificationRequest: "IdentificationRequest", TypeIdentificationResponse: "IdentificationResponse",
	TypeSGSNContextRequest: "SGSNContextRequest", TypeSGSNContextResponse: "SGSNContextResponse", TypeSGSNContextAcknowledge: "SGSNContextAcknowledge",
	TypeForwardRelocationRequest: "ForwardRelocationRequest", TypeForwardRelocationResponse: "ForwardRelocationResponse",
	TypeForwardRelocationComplete: "ForwardRelocationComplete", TypeForwardRelocationCompleteAcknowledge: "ForwardRelocationCompleteAcknowledge",
	TypeRelocationCancelRequest: "RelocationCancelRequest", TypeRelocationCancelResponse: "RelocationCancelResponse",
	TypeForwardSRNSContext: "ForwardSRNSContext", TypeForwardSRNSContextAcknowledge: "ForwardSRNSContextAcknowledge",
	TypeUERegistrationQueryRequest: "UERegistrationQueryRequest", TypeUERegistrationQueryResponse: "UERegistrationQueryResponse",
	TypeRANInformationRelay: "RANInformationRelay",
	TypeMBMSNotificationRequest: "MBMSNotificationRequest", TypeMBMSNotificationResponse: "MBMSNotificationResponse",
	TypeMBMSNotificationRejectRequest: "MBMSNotificationRejectRequest", TypeMBMSNotificationRejectResponse: "MBMSNotificationRejectResponse",
	TypeCreateMBMSContextRequest: "CreateMBMSContextRequest", TypeCreateMBMSContextResponse: "CreateMBMSContextResponse",
	TypeUpdateMBMSContextRequest: "UpdateMBMSContextRequest", TypeUpdateMBMSContextResponse: "UpdateMBMSContextResponse",
	TypeDeleteMBMSContextRequest: "DeleteMBMSContextRequest", TypeDeleteMBMSContextResponse: "DeleteMBMSContextResponse",
	TypeMBMSRegistrationRequest: "MBMSRegistrationRequest", TypeMBMSRegistrationResponse: "MBMSRegistrationResponse",
	TypeMBMSDeRegistrationRequest: "MBMSDeRegistrationRequest", TypeMBMSDeRegistrationResponse: "MBMSDeRegistrationResponse",
	TypeMBMSSessionStartRequest: "MBMSSessionStartRequest", TypeMBMSSessionStartResponse: "MBMSSessionStartResponse",
	TypeMBMSSessionStopRequest: "MBMSSessionStopRequest", TypeMBMSSessionStopResponse: "MBMSSessionStopResponse",
	TypeMBMSSessionUpdateRequest: "MBMSSessionUpdateRequest", TypeMBMSSessionUpdateResponse: "MBMSSessionUpdateResponse",
	TypeMSInfoChangeNotificationRequest: "MSInfoChangeNotificationRequest", TypeMSInfoChangeNotificationResponse: "MSInfoChangeNotificationResponse",
	TypeDataRecordTransferRequest: "DataRecordTransferRequest", TypeDataRecordTransferResponse: "DataRecordTransferResponse",
	TypeEndMarker: "EndMarker", TypeGPDU: "GPDU",
}

// Templates holds the common (side-independent) IE template for every
// declared message type. TypeUpdatePDPContextRequest and
// TypeUpdatePDPContextResponse are deliberately absent here: their
// template depends on which side authored the message (§4.6), and are
// held instead in UpdatePDPContextRequestSGSN/GGSN and
// UpdatePDPContextResponseSGSN/GGSN below.
var Templates = map[uint8]Template{
	TypeEchoRequest: {
		O(ie.PrivateExtension, "PrivateExtension"),
	},
	TypeEchoResponse: {
		O(ie.TypeRecovery, "Recovery"),
	},
	TypeVersionNotSupported: {},

	TypeNodeAliveRequest: {
		O(ie.TypeGSNAddress, "NodeAddress"),
	},
	TypeNodeAliveResponse: {},
	TypeRedirectionRequest: {
		M(ie.TypeCause, "Cause"),
		O(ie.TypeGSNAddress, "GSNAddress"),
	},
	TypeRedirectionResponse: {
		M(ie.TypeCause, "Cause"),
	},

	TypeCreatePDPContextRequest: {
		O(ie.TypeIMSI, "IMSI"),
		O(ie.TypeRAI, "RoutingAreaIdentity"),
		O(ie.TypeRecovery, "Recovery"),
		O(ie.TypeSelectionMode, "SelectionMode"),
		M(ie.TypeTEIDDataI, "TEIDDataI"),
		O(ie.TypeTEIDCP, "TEIDControlPlane"),
		M(ie.TypeNSAPI, "NSAPI"),
		O(ie.TypeNSAPI, "LinkedNSAPI"),
		O(ie.TypeChargingCharacteristics, "ChargingCharacteristics"),
		O(ie.TypeTraceReference, "TraceReference"),
		O(ie.TypeTraceType, "TraceType"),
		O(ie.TypeEndUserAddress, "EndUserAddress"),
		O(ie.TypeAPN, "AccessPointName"),
		O(ie.TypePCO, "ProtocolConfigOptions"),
		M(ie.TypeGSNAddress, "SGSNAddressForSignalling"),
		M(ie.TypeGSNAddress, "SGSNAddressForUserTraffic"),
		O(ie.TypeMSISDN, "MSISDN"),
		M(ie.TypeQoSProfile, "QoSProfile"),
		O(ie.TypeTFT, "TrafficFlowTemplate"),
		O(ie.TypeTriggerId, "TriggerId"),
		O(ie.TypeOMCIdentity, "OMCIdentity"),
		O(ie.TypeCommonFlags, "CommonFlags"),
		O(ie.TypeAPNRestriction, "APNRestriction"),
		O(ie.TypeRATType, "RATType"),
		O(ie.TypeULI, "UserLocationInformation"),
		O(ie.TypeMSTimeZone, "MSTimeZone"),
		O(ie.TypeIMEI, "IMEISV"),
	},
	TypeCreatePDPContextResponse: {
		M(ie.TypeCause, "Cause"),
		O(ie.TypeReorderingRequired, "ReorderingRequired"),
		O(ie.TypePCO, "ProtocolConfigOptions"),
		O(ie.TypeTEIDDataI, "TEIDDataI"),
		O(ie.TypeTEIDCP, "TEIDControlPlane"),
		O(ie.TypeChargingID, "ChargingID"),
		O(ie.TypeEndUserAddress, "EndUserAddress"),
		O(ie.TypeGSNAddress, "GGSNAddressForControlPlane"),
		O(ie.TypeGSNAddress, "GGSNAddressForUserTraffic"),
		O(ie.TypeQoSProfile, "QoSProfile"),
		O(ie.TypeCommonFlags, "CommonFlags"),
		O(ie.TypeAPNRestriction, "APNRestriction"),
		O(ie.TypeMSISDN, "MSISDN"),
	},
	TypeDeletePDPContextRequest: {
		O(ie.TypeTeardownInd, "TeardownInd"),
		M(ie.TypeNSAPI, "NSAPI"),
		O(ie.TypeTFT, "TrafficFlowTemplate"),
	},
	TypeDeletePDPContextResponse: {
		M(ie.TypeCause, "Cause"),
		O(ie.TypePCO, "ProtocolConfigOptions"),
	},
	TypeInitiatePDPContextActivationRequest: {
		M(ie.TypeNSAPI, "LinkedNSAPI"),
		O(ie.TypeTFT, "TrafficFlowTemplate"),
		M(ie.TypeQoSProfile, "QoSProfile"),
		O(ie.TypeCommonFlags, "CommonFlags"),
	},
	TypeInitiatePDPContextActivationResponse: {
		M(ie.TypeCause, "Cause"),
		O(ie.TypeQoSProfile, "QoSProfile"),
	},

	TypeErrorIndication: {
		M(ie.TypeTEIDDataI, "TEIDDataI"),
		M(ie.TypeGSNAddress, "GSNAddress"),
	},
	TypePDUNotificationRequest: {
		M(ie.TypeIMSI, "IMSI"),
		M(ie.TypeTEIDDataI, "TEIDDataI"),
		O(ie.TypeEndUserAddress, "EndUserAddress"),
		M(ie.TypeAPN, "AccessPointName"),
		O(ie.TypePCO, "ProtocolConfigOptions"),
		M(ie.TypeGSNAddress, "GGSNAddress"),
	},
	TypePDUNotificationResponse: {
		M(ie.TypeCause, "Cause"),
	},
	TypePDUNotificationRejectRequest: {
		M(ie.TypeCause, "Cause"),
		M(ie.TypeEndUserAddress, "EndUserAddress"),
		M(ie.TypeAPN, "AccessPointName"),
	},
	TypePDUNotificationRejectResponse: {
		M(ie.TypeCause, "Cause"),
	},
	TypeSupportedExtensionHeadersNotification: {
		M(ie.TypeExtHeaderTypeList, "ExtensionHeaderTypeList"),
	},

	TypeSendRouteingInfoRequest: {
		M(ie.TypeIMSI, "IMSI"),
	},
	TypeSendRouteingInfoResponse: {
		M(ie.TypeCause, "Cause"),
		O(ie.TypeIMSI, "IMSI"),
		O(ie.TypeMAPCause, "MAPCause"),
		O(ie.TypeMSNotReachableReason, "MSNotReachableReason"),
	},
	TypeFailureReportRequest: {
		M(ie.TypeIMSI, "IMSI"),
	},
	TypeFailureReportResponse: {
		M(ie.TypeCause, "Cause"),
	},
	TypeNoteMSPresentRequest: {
		M(ie.TypeIMSI, "IMSI"),
		M(ie.TypeGSNAddress, "GSNAddress"),
	},
	TypeNoteMSPresentResponse: {
		M(ie.TypeCause, "Cause"),
	},

	TypeIdentificationRequest: {
		M(ie.TypeRAI, "RoutingAreaIdentity"),
		M(ie.TypePTMSI, "PTMSI"),
		O(ie.TypePTMSISignature, "PTMSISignature"),
		O(ie.TypeGSNAddress, "SGSNAddress"),
		O(ie.TypeTEIDCP, "TEIDControlPlane"),
	},
	TypeIdentificationResponse: {
		M(ie.TypeCause, "Cause"),
		O(ie.TypeIMSI, "IMSI"),
		O(ie.TypeAuthentTriplet, "AuthenticationTriplet"),
	},
	TypeSGSNContextRequest: {
		O(ie.TypeIMSI, "IMSI"),
		M(ie.TypeRAI, "RoutingAreaIdentity"),
		M(ie.TypeTLLI, "TLLI"),
		O(ie.TypePTMSISignature, "PTMSISignature"),
		M(ie.TypeGSNAddress, "SGSNAddress"),
		O(ie.TypeTEIDCP, "TEIDControlPlane"),
	},
	TypeSGSNContextResponse: {
		M(ie.TypeCause, "Cause"),
		O(ie.TypeIMSI, "IMSI"),
		O(ie.TypeMMContext, "MMContext"),
		O(ie.TypePDPContext, "PDPContext"),
	},
	TypeSGSNContextAcknowledge: {
		M(ie.TypeCause, "Cause"),
		O(ie.TypeTEIDDataII, "TEIDDataII"),
	},
	TypeForwardRelocationRequest: {
		M(ie.TypeIMSI, "IMSI"),
		M(ie.TypeMMContext, "MMContext"),
		O(ie.TypePDPContext, "PDPContext"),
		O(ie.TypeTargetIdentification, "TargetIdentification"),
		O(ie.TypeUTRANTransparentContainer, "UTRANTransparentContainer"),
	},
	TypeForwardRelocationResponse: {
		M(ie.TypeCause, "Cause"),
		O(ie.TypeRABSetupInfo, "RABSetupInformation"),
	},
	TypeForwardRelocationComplete: {},
	TypeForwardRelocationCompleteAcknowledge: {
		M(ie.TypeCause, "Cause"),
	},
	TypeRelocationCancelRequest: {
		O(ie.TypeIMSI, "IMSI"),
	},
	TypeRelocationCancelResponse: {
		M(ie.TypeCause, "Cause"),
	},
	TypeForwardSRNSContext: {
		O(ie.TypeRABContext, "RABContext"),
	},
	TypeForwardSRNSContextAcknowledge: {
		M(ie.TypeCause, "Cause"),
	},
	TypeUERegistrationQueryRequest: {
		M(ie.TypeIMSI, "IMSI"),
	},
	TypeUERegistrationQueryResponse: {
		M(ie.TypeCause, "Cause"),
		O(ie.TypeIMSI, "IMSI"),
	},

	TypeRANInformationRelay: {},

	TypeMBMSNotificationRequest:       {M(ie.TypeIMSI, "IMSI")},
	TypeMBMSNotificationResponse:      {M(ie.TypeCause, "Cause")},
	TypeMBMSNotificationRejectRequest: {M(ie.TypeCause, "Cause")},
	TypeMBMSNotificationRejectResponse: {M(ie.TypeCause, "Cause")},
	TypeCreateMBMSContextRequest:  {O(ie.TypeIMSI, "IMSI")},
	TypeCreateMBMSContextResponse: {M(ie.TypeCause, "Cause")},
	TypeUpdateMBMSContextRequest:  {},
	TypeUpdateMBMSContextResponse: {M(ie.TypeCause, "Cause")},
	TypeDeleteMBMSContextRequest:  {},
	TypeDeleteMBMSContextResponse: {M(ie.TypeCause, "Cause")},
	TypeMBMSRegistrationRequest:   {},
	TypeMBMSRegistrationResponse:  {M(ie.TypeCause, "Cause")},
	TypeMBMSDeRegistrationRequest: {},
	TypeMBMSDeRegistrationResponse: {M(ie.TypeCause, "Cause")},
	TypeMBMSSessionStartRequest:  {O(ie.TypeMBMSIPMulticastDistrib, "MBMSIPMulticastDistribution")},
	TypeMBMSSessionStartResponse: {M(ie.TypeCause, "Cause")},
	TypeMBMSSessionStopRequest:   {},
	TypeMBMSSessionStopResponse:  {M(ie.TypeCause, "Cause")},
	TypeMBMSSessionUpdateRequest: {},
	TypeMBMSSessionUpdateResponse: {M(ie.TypeCause, "Cause")},

	TypeMSInfoChangeNotificationRequest: {
		O(ie.TypeIMSI, "IMSI"),
		O(ie.TypeRATType, "RATType"),
	},
	TypeMSInfoChangeNotificationResponse: {
		M(ie.TypeCause, "Cause"),
	},

	TypeDataRecordTransferRequest:  {},
	TypeDataRecordTransferResponse: {M(ie.TypeCause, "Cause")},
}

// Update PDP Context Request/Response have side-specific templates: which
// physical message shape is in play depends on which side authored it,
// not on wire bits (§4.6). SGSN suffix denotes the message shape an SGSN
// sends; GGSN suffix denotes the shape a GGSN sends.
var (
	UpdatePDPContextRequestSGSN = Template{
		O(ie.TypeIMSI, "IMSI"),
		M(ie.TypeRAI, "RoutingAreaIdentity"),
		O(ie.TypeRecovery, "Recovery"),
		M(ie.TypeTEIDDataI, "TEIDDataI"),
		M(ie.TypeTEIDCP, "TEIDControlPlane"),
		M(ie.TypeNSAPI, "NSAPI"),
		O(ie.TypeTraceReference, "TraceReference"),
		O(ie.TypeTraceType, "TraceType"),
		M(ie.TypeGSNAddress, "SGSNAddressForControlPlane"),
		M(ie.TypeGSNAddress, "SGSNAddressForUserTraffic"),
		O(ie.TypeAPN, "AccessPointName"),
		O(ie.TypePCO, "ProtocolConfigOptions"),
		M(ie.TypeQoSProfile, "QoSProfile"),
		O(ie.TypeTFT, "TrafficFlowTemplate"),
		O(ie.TypeCommonFlags, "CommonFlags"),
		O(ie.TypeRATType, "RATType"),
		O(ie.TypeULI, "UserLocationInformation"),
		O(ie.TypeMSTimeZone, "MSTimeZone"),
	}
	UpdatePDPContextResponseSGSN = Template{
		M(ie.TypeCause, "Cause"),
		O(ie.TypeTEIDDataI, "TEIDDataI"),
		O(ie.TypeTEIDCP, "TEIDControlPlane"),
		O(ie.TypeGSNAddress, "GGSNAddressForControlPlane"),
		O(ie.TypeGSNAddress, "GGSNAddressForUserTraffic"),
		O(ie.TypeQoSProfile, "QoSProfile"),
		O(ie.TypeChargingID, "ChargingID"),
	}
	UpdatePDPContextRequestGGSN = Template{
		M(ie.TypeTEIDDataI, "TEIDDataI"),
		M(ie.TypeNSAPI, "NSAPI"),
		O(ie.TypePCO, "ProtocolConfigOptions"),
		M(ie.TypeGSNAddress, "GGSNAddressForControlPlane"),
		M(ie.TypeGSNAddress, "GGSNAddressForUserTraffic"),
		M(ie.TypeQoSProfile, "QoSProfile"),
		O(ie.TypeTFT, "TrafficFlowTemplate"),
		O(ie.TypeCommonFlags, "CommonFlags"),
		O(ie.TypeAPNRestriction, "APNRestriction"),
	}
	UpdatePDPContextResponseGGSN = Template{
		M(ie.TypeCause, "Cause"),
		M(ie.TypeTEIDDataI, "TEIDDataI"),
		O(ie.TypeTEIDCP, "TEIDControlPlane"),
		O(ie.TypeChargingID, "ChargingID"),
		O(ie.TypeGSNAddress, "SGSNAddressForControlPlane"),
		O(ie.TypeGSNAddress, "SGSNAddressForUserTraffic"),
		O(ie.TypeQoSProfile, "QoSProfile"),
	}
)
