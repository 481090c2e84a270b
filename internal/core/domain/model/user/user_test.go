package user_test

import (
	"testing"

	"studel/internal/core/domain/model/user"
	"studel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("customer is approved immediately", func(t *testing.T) {
		u, err := user.NewUser("cust1", " Alice Johnson ", "alice@example.com", "1111111111", user.Customer, "RUN001", "vendor1")

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, "Alice Johnson", u.Name())
		assert.True(t, u.IsApproved())
		assert.Empty(t, u.CampusID(), "campus id only applies to runners")
		assert.Empty(t, u.VendorID(), "vendor id only applies to canteen staff")
	})

	t.Run("runner starts unapproved and needs a campus id", func(t *testing.T) {
		u, err := user.NewUser("run3", "New Runner", "", "4444444444", user.Runner, "RUN003", "")

		require.NoError(t, err)
		assert.False(t, u.IsApproved())
		assert.Equal(t, "RUN003", u.CampusID())

		_, err = user.NewUser("run4", "No Campus", "", "5555555555", user.Runner, "", "")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "campusId")
	})

	t.Run("canteen staff starts unapproved and needs a vendor", func(t *testing.T) {
		u, err := user.NewUser("can8", "Staff", "", "7777777777", user.Canteen, "", "vendor1")
		require.NoError(t, err)
		assert.False(t, u.IsApproved())

		_, err = user.NewUser("can9", "Staff", "", "6666666666", user.Canteen, "", "")

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "vendorId")
	})

	t.Run("should join missing fields", func(t *testing.T) {
		_, err := user.NewUser("", "", "", "", user.UnknownRole, "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "id")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "phone")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var u *user.User

		assert.Equal(t, user.ErrUserIsNotConstructed, u.Validate())
		assert.Equal(t, user.ErrUserIsNotConstructed, (&user.User{}).Validate())
	})
}

func TestUser_Approve(t *testing.T) {
	t.Run("approving a runner is idempotent", func(t *testing.T) {
		u, err := user.NewUser("run3", "New Runner", "", "4444444444", user.Runner, "RUN003", "")
		require.NoError(t, err)

		require.NoError(t, u.Approve())
		require.NoError(t, u.Approve())

		assert.True(t, u.IsApproved())
		assert.True(t, u.Actor().IsApproved)
	})

	t.Run("approving canteen staff", func(t *testing.T) {
		u, err := user.NewUser("can8", "Staff", "", "7777777777", user.Canteen, "", "vendor1")
		require.NoError(t, err)

		require.NoError(t, u.Approve())

		assert.True(t, u.Actor().IsApproved)
	})

	t.Run("approving a customer is a validation error", func(t *testing.T) {
		u, err := user.NewUser("cust1", "Alice", "", "1111111111", user.Customer, "", "")
		require.NoError(t, err)

		err = u.Approve()

		assert.True(t, errs.IsValidation(err))
	})
}

func TestActor_Require(t *testing.T) {
	canteen := user.Actor{ID: "can1", Name: "Staff", Role: user.Canteen, VendorID: "vendor1", IsApproved: true}

	require.NoError(t, canteen.Require(user.Canteen, "accept order"))
	assert.True(t, canteen.Is(user.Canteen))

	err := canteen.Require(user.Admin, "force-cancel order")
	assert.ErrorIs(t, err, errs.ErrAuthorizationDenied)
	assert.Contains(t, err.Error(), "requires role Admin, actor is Canteen")

	err = user.Actor{}.Require(user.Customer, "place order")
	assert.ErrorIs(t, err, errs.ErrAuthorizationDenied)

	t.Run("canteen without vendor", func(t *testing.T) {
		unbound := user.Actor{ID: "can3", Name: "Staff", Role: user.Canteen, IsApproved: true}

		err := unbound.Require(user.Canteen, "view vendor queue")

		assert.ErrorIs(t, err, errs.ErrAuthorizationDenied)
		assert.Contains(t, err.Error(), "canteen account has no vendor")
	})

	t.Run("unapproved canteen", func(t *testing.T) {
		pending := user.Actor{ID: "can4", Name: "Staff", Role: user.Canteen, VendorID: "vendor1"}

		err := pending.Require(user.Canteen, "accept order")

		assert.ErrorIs(t, err, errs.ErrAuthorizationDenied)
		assert.Contains(t, err.Error(), "canteen account is not approved")
	})
}

func TestRole_SelfRegistrable(t *testing.T) {
	assert.True(t, user.Customer.SelfRegistrable())
	assert.True(t, user.Runner.SelfRegistrable())
	assert.True(t, user.Canteen.SelfRegistrable())
	assert.False(t, user.Admin.SelfRegistrable())
	assert.False(t, user.UnknownRole.SelfRegistrable())
}

func TestParseRole(t *testing.T) {
	for _, r := range user.Roles() {
		parsed, err := user.ParseRole(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}

	_, err := user.ParseRole("Guest")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, "Unknown", user.UnknownRole.String())
}

func TestUser_Actor(t *testing.T) {
	u, err := user.NewUser("can1", "Canteen Staff", "", "2222222222", user.Canteen, "", "vendor1")
	require.NoError(t, err)
	require.NoError(t, u.Approve())

	assert.Equal(t, user.Actor{ID: "can1", Name: "Canteen Staff", Role: user.Canteen, IsApproved: true, VendorID: "vendor1"}, u.Actor())
}
