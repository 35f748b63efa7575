package usecase

import (
	"log"

	"github.com/kranuabs13/Emailtrackmaster/internal/tracking/domain"
	"github.com/kranuabs13/Emailtrackmaster/internal/tracking/repository"
)

// slaResolver implements SLAResolver against the VIP rule table
type slaResolver struct {
	vipRepo repository.VipRuleRepository
}

// NewSLAResolver creates a new instance of slaResolver
func NewSLAResolver(vipRepo repository.VipRuleRepository) SLAResolver {
	return &slaResolver{vipRepo: vipRepo}
}

func (s *slaResolver) Resolve(senderEmail string) (bool, int) {
	rule, err := s.vipRepo.FindBySender(senderEmail)
	if err != nil {
		// Fail open: a transient store error must not keep an email untracked,
		// so it is treated the same as a miss.
		log.Printf("[SLAResolver] VIP lookup failed for %s, using default SLA: %v", senderEmail, err)
		return false, domain.DefaultSLAMinutes
	}
	if rule == nil {
		return false, domain.DefaultSLAMinutes
	}
	return true, rule.SLAMinutes
}
