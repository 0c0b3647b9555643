package app

import "context"

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	spec, err := s.merge(ctx, mergeInput{
		Packages:     req.Packages,
		Requirements: req.Requirements,
		Constraints:  req.Constraints,
		Overrides:    req.Overrides,
		Extras:       req.Extras,
		AllExtras:    req.AllExtras,
	})
	if err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{Summary: summarize(spec)}, nil
}
