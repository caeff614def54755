package aem

// SerializeEntityAvailableCommand builds an ENTITY_AVAILABLE command
// payload; the command carries no payload beyond the common AECP/AEM
// header (IEEE 1722.1 Clause 7.4.3).
func SerializeEntityAvailableCommand() []byte { return nil }

// SerializeControllerAvailableCommand builds a CONTROLLER_AVAILABLE
// command payload; likewise payload-less (Clause 7.4.4).
func SerializeControllerAvailableCommand() []byte { return nil }

// SerializeRegisterUnsolicitedNotificationCommand builds a
// REGISTER_UNSOLICITED_NOTIFICATION command payload (Clause 7.4.37):
// payload-less, the AECP source MAC/target pairing on the wire is what
// the responder registers against.
func SerializeRegisterUnsolicitedNotificationCommand() []byte { return nil }

// SerializeDeregisterUnsolicitedNotificationCommand builds a
// DEREGISTER_UNSOLICITED_NOTIFICATION command payload (Clause 7.4.38).
func SerializeDeregisterUnsolicitedNotificationCommand() []byte { return nil }
