// Package seed inserts reference data the application expects at startup.
package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/yigit/majorpath/internal/app/models"
)

// MajorInserter adds a major unless it already exists
type MajorInserter interface {
	InsertIfMissing(ctx context.Context, major models.Major) (bool, error)
}

// DefaultMajors is the majors catalog the classifier ranks against. Names
// must match the classifier's labels exactly.
var DefaultMajors = []models.Major{
	{
		Name: "Teknik Informatika",
		Description: "Jurusan yang mempelajari pengembangan perangkat lunak, algoritma, dan sistem komputer. Mencakup pemrograman, kecerdasan buatan, dan jaringan komputer.\n" +
			"Prospek kerja: Software Developer, Data Scientist, AI Engineer, IT Consultant, Cybersecurity Specialist.",
	},
	{
		Name: "Psikologi",
		Description: "Mempelajari perilaku manusia dan proses mental, termasuk aspek kognitif, emosional, dan perkembangan individu.\n" +
			"Prospek kerja: Psikolog Klinis, HRD, Konselor, Peneliti Psikologi, Konsultan Organisasi.",
	},
	{
		Name: "Kedokteran",
		Description: "Jurusan yang mempersiapkan siswa menjadi dokter dengan mempelajari anatomi, fisiologi, dan praktik medis.\n" +
			"Prospek kerja: Dokter Umum, Dokter Spesialis, Peneliti Medis, Dosen Kedokteran.",
	},
	{
		Name: "Desain Komunikasi Visual",
		Description: "Mempelajari desain grafis, ilustrasi, dan komunikasi visual untuk media cetak dan digital.\n" +
			"Prospek kerja: Graphic Designer, Art Director, Illustrator, UI/UX Designer.",
	},
	{
		Name: "Farmasi",
		Description: "Mempelajari obat-obatan, komposisi kimia, dan pengaruhnya terhadap tubuh manusia.\n" +
			"Prospek kerja: Apoteker, Peneliti Farmasi, Medical Representative.",
	},
	{
		Name: "Pendidikan",
		Description: "Mempersiapkan siswa menjadi pendidik profesional dengan berbagai spesialisasi bidang studi.\n" +
			"Prospek kerja: Guru, Dosen, Konsultan Pendidikan, Pengembang Kurikulum.",
	},
	{
		Name: "Pariwisata",
		Description: "Mempelajari manajemen industri pariwisata, termasuk hotel, restoran, dan destinasi wisata.\n" +
			"Prospek kerja: Hotel Manager, Tour Guide, Event Planner, Konsultan Pariwisata.",
	},
	{
		Name: "Arsitektur",
		Description: "Mempelajari desain bangunan dan lingkungan binaan yang fungsional dan estetis.\n" +
			"Prospek kerja: Arsitek, Urban Planner, Interior Designer, Konsultan Konstruksi.",
	},
	{
		Name: "Manajemen",
		Description: "Mempelajari pengelolaan bisnis dan organisasi untuk mencapai tujuan secara efektif.\n" +
			"Prospek kerja: Manajer, Entrepreneur, Konsultan Bisnis, Marketing Specialist.",
	},
	{
		Name: "Teknik Mesin",
		Description: "Mempelajari desain, analisis, dan pemeliharaan sistem mekanik dan mesin.\n" +
			"Prospek kerja: Mechanical Engineer, Maintenance Engineer, Automotive Engineer.",
	},
	{
		Name: "Biologi",
		Description: "Mempelajari makhluk hidup dan interaksinya dengan lingkungan.\n" +
			"Prospek kerja: Peneliti Biologi, Konservasionis, Quality Control di Industri Makanan/Farmasi.",
	},
	{
		Name: "Hukum",
		Description: "Mempelajari sistem hukum dan penerapannya dalam masyarakat.\n" +
			"Prospek kerja: Pengacara, Hakim, Jaksa, Legal Consultant.",
	},
	{
		Name: "Statistik",
		Description: "Mempelajari pengumpulan, analisis, dan interpretasi data.\n" +
			"Prospek kerja: Data Analyst, Statistikawan, Peneliti Pasar, Konsultan Bisnis.",
	},
	{
		Name: "Teknik Elektro",
		Description: "Mempelajari sistem kelistrikan, elektronika, dan telekomunikasi.\n" +
			"Prospek kerja: Electrical Engineer, Telecommunication Engineer, Power System Analyst.",
	},
	{
		Name: "Hubungan Internasional",
		Description: "Mempelajari hubungan antar negara dan organisasi internasional.\n" +
			"Prospek kerja: Diplomat, International Relations Consultant, NGO Worker.",
	},
	{
		Name: "Sastra Inggris",
		Description: "Mempelajari bahasa, sastra, dan budaya Inggris.\n" +
			"Prospek kerja: Penerjemah, Guru Bahasa, Content Writer, Diplomat.",
	},
	{
		Name: "Ilmu Komunikasi",
		Description: "Mempelajari proses komunikasi dalam berbagai konteks dan media.\n" +
			"Prospek kerja: Public Relations, Jurnalis, Media Planner, Content Creator.",
	},
	{
		Name: "Akuntansi",
		Description: "Mempelajari pencatatan dan analisis transaksi keuangan.\n" +
			"Prospek kerja: Akuntan, Auditor, Financial Analyst, Tax Consultant.",
	},
	{
		Name: "Sistem Informasi",
		Description: "Mempelajari integrasi sistem teknologi informasi dengan kebutuhan bisnis.\n" +
			"Prospek kerja: System Analyst, IT Consultant, Database Administrator.",
	},
	{
		Name: "Teknik Sipil",
		Description: "Mempelajari perancangan dan konstruksi infrastruktur.\n" +
			"Prospek kerja: Civil Engineer, Structural Engineer, Construction Manager.",
	},
}

// SeedMajors inserts DefaultMajors that are missing. Existing rows are left
// untouched, so running it on every start is safe. Every major is attempted;
// failures are joined.
func SeedMajors(ctx context.Context, repo MajorInserter, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default majors...")

	var finalErr error
	inserted := 0
	for _, major := range DefaultMajors {
		created, err := repo.InsertIfMissing(ctx, major)
		if err != nil {
			lgr.Error().Err(err).Str("major", major.Name).Msg("Error creating major")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if created {
			inserted++
		}
	}

	lgr.Info().Int("inserted", inserted).Int("total", len(DefaultMajors)).Msg("Default majors checked")
	return finalErr
}
