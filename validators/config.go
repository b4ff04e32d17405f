package validators

import (
	"encoding/json"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrNoDelegate is returned when a contract set has no way to resolve its list.
var ErrNoDelegate = errors.New("no delegate for validator contract")

// Config selects a validator set implementation.
// Exactly one of the variant fields must be set.
type Config struct {
	// List is a fixed list of authorities.
	List []common.Address `json:"list,omitempty"`
	// SafeContract is a contract holding the list, without reporting.
	SafeContract *common.Address `json:"safeContract,omitempty"`
	// Contract is a contract holding the list that accepts misbehaviour reports.
	Contract *common.Address `json:"contract,omitempty"`
	// Delegate optionally overrides the list source of a contract set.
	Delegate *Config `json:"delegate,omitempty"`
	// Multi maps starting blocks to validator sets.
	Multi map[uint64]*Config `json:"multi,omitempty"`
}

// DelegateFunc resolves the list source for a validator contract.
type DelegateFunc func(contract common.Address) (AddressSet, error)

// ParseConfig parses a JSON validator set config.
func ParseConfig(data []byte) (*Config, error) {
	conf := &Config{}
	if err := json.Unmarshal(data, conf); err != nil {
		return nil, errors.Wrap(err, "parse validator set config")
	}
	return conf, nil
}

// LoadConfig reads a JSON validator set config from a file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// variants counts the variant fields that are set.
func (c *Config) variants() int {
	var n int
	if len(c.List) != 0 {
		n++
	}
	if c.SafeContract != nil {
		n++
	}
	if c.Contract != nil {
		n++
	}
	if len(c.Multi) != 0 {
		n++
	}
	return n
}

// Build constructs the validator set described by conf.
// delegates may be nil if no contract set relies on it.
func Build(le *logrus.Entry, conf *Config, delegates DelegateFunc) (ValidatorSet, error) {
	if conf == nil {
		return nil, errors.New("validator set config is empty")
	}
	if n := conf.variants(); n != 1 {
		return nil, errors.Errorf("validator set config must set exactly one variant, found %d", n)
	}

	switch {
	case len(conf.List) != 0:
		return NewList(conf.List)
	case conf.SafeContract != nil:
		delegate, err := buildDelegate(le, conf, *conf.SafeContract, delegates)
		if err != nil {
			return nil, err
		}
		return readOnly{AddressSet: delegate}, nil
	case conf.Contract != nil:
		delegate, err := buildDelegate(le, conf, *conf.Contract, delegates)
		if err != nil {
			return nil, err
		}
		return NewContract(le, *conf.Contract, delegate), nil
	default:
		sets := make(map[uint64]ValidatorSet, len(conf.Multi))
		for start, sub := range conf.Multi {
			vs, err := Build(le, sub, delegates)
			if err != nil {
				return nil, errors.WithMessagef(err, "multi set at block %d", start)
			}
			sets[start] = vs
		}
		return NewMulti(sets)
	}
}

func buildDelegate(le *logrus.Entry, conf *Config, addr common.Address, delegates DelegateFunc) (AddressSet, error) {
	if conf.Delegate != nil {
		return Build(le, conf.Delegate, delegates)
	}
	if delegates == nil {
		return nil, errors.Wrap(ErrNoDelegate, addr.Hex())
	}
	return delegates(addr)
}
