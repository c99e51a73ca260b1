package service

import (
	"errors"

	api "github.com/cbsinteractive/edl-changelist/client/changelist"
)

func validateCompare(p *api.CreateChangelistRequest) error {
	if p.Old.Empty() {
		return errors.New("missing old cut from request")
	}
	if p.New.Empty() {
		return errors.New("missing new cut from request")
	}
	return nil
}

func validatePutCut(p *api.PutCutRequest) error {
	if p.Cut.Empty() {
		return errors.New("missing cut source from request")
	}
	return nil
}
