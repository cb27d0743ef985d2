package handler

import (
	"errors"

	"github.com/bkpsdm/simpeg-grpc/internal/core/mutasi"
	"github.com/bkpsdm/simpeg-grpc/internal/core/pegawai"
	"github.com/bkpsdm/simpeg-grpc/internal/core/posisi"
	"github.com/bkpsdm/simpeg-grpc/internal/core/riwayat"
	"github.com/bkpsdm/simpeg-grpc/internal/core/user"
	"github.com/bkpsdm/simpeg-grpc/internal/core/wilayah"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pegawai.ErrInvalidID),
		errors.Is(err, pegawai.ErrInvalidNIP),
		errors.Is(err, pegawai.ErrInvalidNama),
		errors.Is(err, pegawai.ErrInvalidEmail),
		errors.Is(err, pegawai.ErrInvalidTanggalLahir),
		errors.Is(err, pegawai.ErrInvalidJenisKelamin),
		errors.Is(err, pegawai.ErrInvalidPendidikan),
		errors.Is(err, pegawai.ErrInvalidGolonganDarah),
		errors.Is(err, pegawai.ErrInvalidAlamat),
		errors.Is(err, pegawai.ErrInvalidPageSize),
		errors.Is(err, pegawai.ErrInvalidPageToken),
		errors.Is(err, user.ErrInvalidUsername),
		errors.Is(err, user.ErrInvalidEmail),
		errors.Is(err, user.ErrInvalidPassword),
		errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, user.ErrInvalidID),
		errors.Is(err, user.ErrInvalidPageSize),
		errors.Is(err, user.ErrInvalidPageToken),
		errors.Is(err, riwayat.ErrInvalidID),
		errors.Is(err, riwayat.ErrInvalidPegawaiID),
		errors.Is(err, riwayat.ErrInvalidJabatan),
		errors.Is(err, riwayat.ErrInvalidUnitKerja),
		errors.Is(err, riwayat.ErrInvalidTMTJabatan),
		errors.Is(err, riwayat.ErrInvalidPeriode),
		errors.Is(err, riwayat.ErrInvalidPageSize),
		errors.Is(err, riwayat.ErrInvalidPageToken),
		errors.Is(err, mutasi.ErrInvalidID),
		errors.Is(err, mutasi.ErrInvalidPegawaiID),
		errors.Is(err, mutasi.ErrInvalidUnitKerja),
		errors.Is(err, mutasi.ErrInvalidJabatan),
		errors.Is(err, mutasi.ErrInvalidAlasan),
		errors.Is(err, mutasi.ErrInvalidTanggalEfektif),
		errors.Is(err, mutasi.ErrInvalidStatus),
		errors.Is(err, mutasi.ErrInvalidDiajukanOleh),
		errors.Is(err, mutasi.ErrInvalidDisetujuiOleh),
		errors.Is(err, mutasi.ErrInvalidPageSize),
		errors.Is(err, mutasi.ErrInvalidPageToken),
		errors.Is(err, posisi.ErrInvalidID),
		errors.Is(err, posisi.ErrInvalidNamaPosisi),
		errors.Is(err, posisi.ErrInvalidUnitKerja),
		errors.Is(err, posisi.ErrInvalidKuota),
		errors.Is(err, posisi.ErrInvalidPageSize),
		errors.Is(err, posisi.ErrInvalidPageToken):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, pegawai.ErrNIPAlreadyExists),
		errors.Is(err, user.ErrUsernameAlreadyExists),
		errors.Is(err, user.ErrEmailAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, pegawai.ErrPegawaiNotFound),
		errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, user.ErrPegawaiNotFound),
		errors.Is(err, riwayat.ErrRiwayatNotFound),
		errors.Is(err, riwayat.ErrPegawaiNotFound),
		errors.Is(err, mutasi.ErrMutasiNotFound),
		errors.Is(err, mutasi.ErrPegawaiNotFound),
		errors.Is(err, posisi.ErrPosisiNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, mutasi.ErrAlreadyProcessed),
		errors.Is(err, mutasi.ErrKuotaHabis),
		errors.Is(err, posisi.ErrKuotaHabis):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, user.ErrInvalidCredentials),
		errors.Is(err, user.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, wilayah.ErrUpstream):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
