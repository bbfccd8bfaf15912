package inspector

import (
	"fmt"
	"strings"

	"github.com/devon-mar/linkhdr/linkhdr"
	"github.com/devon-mar/linkhdr/utils/envtag"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

const (
	typeReference = "reference"
	typeAbsolute  = "absolute"

	cfgTag = "cfg"
)

var validate = validator.New()

type resolverOptions interface {
	resolver() linkhdr.Resolver
}

type referenceOptions struct{}

func (*referenceOptions) resolver() linkhdr.Resolver {
	return linkhdr.ReferenceResolver{}
}

type absoluteOptions struct {
	Schemes []string `cfg:"schemes" validate:"dive,required,lowercase"`
}

func (o *absoluteOptions) resolver() linkhdr.Resolver {
	return linkhdr.AbsoluteResolver{Schemes: o.Schemes}
}

// Returns empty options for the given typ.
func getResolverType(typ string) (resolverOptions, error) {
	switch typ {
	case typeReference:
		return &referenceOptions{}, nil
	case typeAbsolute:
		return &absoluteOptions{}, nil
	default:
		return nil, fmt.Errorf("unsupported resolver type %q", typ)
	}
}

func newResolver(typ string, cfg map[string]interface{}) (linkhdr.Resolver, error) {
	opts, err := getResolverType(typ)
	if err != nil {
		return nil, err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: opts, ErrorUnused: true, TagName: cfgTag})
	if err != nil {
		return nil, fmt.Errorf("error initializing config decoder: %w", err)
	}
	if err = decoder.Decode(cfg); err != nil {
		return nil, err
	}

	if err := envtag.Unmarshal(cfgTag, envPrefix+"RESOLVER_"+strings.ToUpper(typ)+"_", opts); err != nil {
		return nil, err
	}

	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("error validating %s resolver config: %w", typ, err)
	}

	return opts.resolver(), nil
}
