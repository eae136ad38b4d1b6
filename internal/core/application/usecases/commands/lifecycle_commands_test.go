package commands_test

import (
	"testing"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordDepartureCommand(t *testing.T) {
	cmd, err := commands.NewRecordDepartureCommand("p-1", "leg_AB")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "p-1", cmd.ParcelID().String())
	assert.Equal(t, "leg_AB", cmd.LegID())

	_, err = commands.NewRecordDepartureCommand("", " ")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "parcel ID")
	assert.Contains(t, err.Error(), "leg id")

	assert.ErrorIs(t, commands.RecordDepartureCommand{}.Validate(), commands.ErrRecordDepartureCommandIsNotConstructed)
}

func TestNewRecordArrivalCommand(t *testing.T) {
	cmd, err := commands.NewRecordArrivalCommand("p-1", "CityB")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "CityB", cmd.Location().Name())

	_, err = commands.NewRecordArrivalCommand("p 1", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	assert.ErrorIs(t, commands.RecordArrivalCommand{}.Validate(), commands.ErrRecordArrivalCommandIsNotConstructed)
}

func TestNewRecordPickupCommand(t *testing.T) {
	cmd, err := commands.NewRecordPickupCommand("p-1")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "p-1", cmd.ParcelID().String())

	_, err = commands.NewRecordPickupCommand("a/b")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	assert.ErrorIs(t, commands.RecordPickupCommand{}.Validate(), commands.ErrRecordPickupCommandIsNotConstructed)
}
