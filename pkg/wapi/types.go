package wapi

// Ref is the opaque object reference the appliance assigns to every
// record and zone object. It is the sole identifier for modify and
// delete calls and is never constructed client side.
type Ref string

func (r Ref) String() string { return string(r) }

// Record is any WAPI object carrying an object reference.
type Record interface {
	Reference() Ref
}

// result wraps a successful response body. NextPageID is only set when
// the request asked for paging and more pages remain.
type result[T any] struct {
	Result     T      `json:"result"`
	NextPageID string `json:"next_page_id"`
}

// ARecord is an IPv4 address record.
type ARecord struct {
	Ref      Ref    `json:"_ref"`
	Name     string `json:"name"`
	IPv4Addr string `json:"ipv4addr"`
	View     string `json:"view"`
	TTL      uint32 `json:"ttl"`
	UseTTL   bool   `json:"use_ttl"`
}

func (r ARecord) Reference() Ref { return r.Ref }

// AAAARecord is an IPv6 address record.
type AAAARecord struct {
	Ref      Ref    `json:"_ref"`
	Name     string `json:"name"`
	IPv6Addr string `json:"ipv6addr"`
	View     string `json:"view"`
	TTL      uint32 `json:"ttl"`
	UseTTL   bool   `json:"use_ttl"`
}

func (r AAAARecord) Reference() Ref { return r.Ref }

// CNameRecord is an alias record pointing at a canonical domain name.
type CNameRecord struct {
	Ref       Ref    `json:"_ref"`
	Name      string `json:"name"`
	Canonical string `json:"canonical"`
	View      string `json:"view"`
	TTL       uint32 `json:"ttl"`
	UseTTL    bool   `json:"use_ttl"`
}

func (r CNameRecord) Reference() Ref { return r.Ref }

// MXRecord is a mail exchange record.
type MXRecord struct {
	Ref           Ref    `json:"_ref"`
	Name          string `json:"name"`
	MailExchanger string `json:"mail_exchanger"`
	Preference    uint16 `json:"preference"`
	View          string `json:"view"`
	TTL           uint32 `json:"ttl"`
	UseTTL        bool   `json:"use_ttl"`
}

func (r MXRecord) Reference() Ref { return r.Ref }

// PTRRecord is a pointer record for reverse mapping.
type PTRRecord struct {
	Ref      Ref    `json:"_ref"`
	Name     string `json:"name"`
	PTRDName string `json:"ptrdname"`
	IPv4Addr string `json:"ipv4addr"`
	IPv6Addr string `json:"ipv6addr"`
	View     string `json:"view"`
	TTL      uint32 `json:"ttl"`
	UseTTL   bool   `json:"use_ttl"`
}

func (r PTRRecord) Reference() Ref { return r.Ref }

// TXTRecord is a text record.
type TXTRecord struct {
	Ref    Ref    `json:"_ref"`
	Name   string `json:"name"`
	Text   string `json:"text"`
	View   string `json:"view"`
	TTL    uint32 `json:"ttl"`
	UseTTL bool   `json:"use_ttl"`
}

func (r TXTRecord) Reference() Ref { return r.Ref }

// HostIPv4Addr is one IPv4 address assignment of a host record.
type HostIPv4Addr struct {
	Ref      Ref    `json:"_ref"`
	IPv4Addr string `json:"ipv4addr"`
	Host     string `json:"host"`
}

// HostRecord groups address assignments under a single host name.
type HostRecord struct {
	Ref       Ref            `json:"_ref"`
	Name      string         `json:"name"`
	IPv4Addrs []HostIPv4Addr `json:"ipv4addrs"`
	View      string         `json:"view"`
	TTL       uint32         `json:"ttl"`
	UseTTL    bool           `json:"use_ttl"`
}

func (r HostRecord) Reference() Ref { return r.Ref }

// ZoneAuth is an authoritative zone.
type ZoneAuth struct {
	Ref  Ref    `json:"_ref"`
	FQDN string `json:"fqdn"`
	View string `json:"view"`
}

func (z ZoneAuth) Reference() Ref { return z.Ref }

// Delegate is one name server a zone is delegated to.
type Delegate struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

// ZoneDelegate is a delegated zone.
type ZoneDelegate struct {
	Ref          Ref        `json:"_ref"`
	FQDN         string     `json:"fqdn"`
	DelegateTo   []Delegate `json:"delegate_to"`
	DelegatedTTL uint32     `json:"delegated_ttl"`
	View         string     `json:"view"`
}

func (z ZoneDelegate) Reference() Ref { return z.Ref }

// TTLRecord is the response of a TTL modification.
type TTLRecord struct {
	Ref    Ref    `json:"_ref"`
	TTL    uint32 `json:"ttl"`
	UseTTL bool   `json:"use_ttl"`
}

func (r TTLRecord) Reference() Ref { return r.Ref }
