package files_test

import (
	"os"
	"path/filepath"

	"github.com/animalet/launchutil/pkg/files"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Files", func() {
	var tempDir string

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "launchutil-files")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, tempDir)
	})

	Context("ReadDataFile", func() {
		It("should return the trimmed content", func() {
			path := filepath.Join(tempDir, "data.txt")
			Expect(os.WriteFile(path, []byte("\n  0x1234abcd \n\n"), 0600)).To(Succeed())

			content, err := files.ReadDataFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(content).To(Equal("0x1234abcd"))
		})

		It("should name the file on failure", func() {
			path := filepath.Join(tempDir, "missing.txt")

			_, err := files.ReadDataFile(path)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(HavePrefix("cannot read " + path))
			Expect(err).To(MatchError(os.ErrNotExist))
		})
	})

	Context("WriteLocalJSONFile", func() {
		It("should write four-space indented JSON", func() {
			err := files.WriteLocalJSONFile(tempDir, "out.json", map[string]any{
				"name":  "alice",
				"ports": []int{9944},
			})
			Expect(err).NotTo(HaveOccurred())

			data, err := os.ReadFile(filepath.Join(tempDir, "out.json"))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal("{\n    \"name\": \"alice\",\n    \"ports\": [\n        9944\n    ]\n}"))
		})

		It("should overwrite an existing file", func() {
			path := filepath.Join(tempDir, "out.json")
			Expect(os.WriteFile(path, []byte("old content that is longer"), 0600)).To(Succeed())

			Expect(files.WriteLocalJSONFile(tempDir, "out.json", 1)).To(Succeed())
			data, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal("1"))
		})

		It("should fail for values that cannot be encoded", func() {
			err := files.WriteLocalJSONFile(tempDir, "bad.json", make(chan int))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("bad.json"))
			Expect(filepath.Join(tempDir, "bad.json")).NotTo(BeAnExistingFile())
		})

		It("should fail when the directory does not exist", func() {
			err := files.WriteLocalJSONFile(filepath.Join(tempDir, "nope"), "out.json", 1)
			Expect(err).To(HaveOccurred())
		})
	})

	Context("CredsFilePath", func() {
		var workDir, homeDir string

		BeforeEach(func() {
			workDir = filepath.Join(tempDir, "project", "work")
			homeDir = filepath.Join(tempDir, "home")
			Expect(os.MkdirAll(workDir, 0o755)).To(Succeed())
			Expect(os.MkdirAll(filepath.Join(homeDir, ".kube"), 0o755)).To(Succeed())

			cwd, err := os.Getwd()
			Expect(err).NotTo(HaveOccurred())
			Expect(os.Chdir(workDir)).To(Succeed())
			DeferCleanup(os.Chdir, cwd)

			home, hadHome := os.LookupEnv("HOME")
			Expect(os.Setenv("HOME", homeDir)).To(Succeed())
			DeferCleanup(func() {
				if hadHome {
					_ = os.Setenv("HOME", home)
				} else {
					_ = os.Unsetenv("HOME")
				}
			})
		})

		touch := func(path string) {
			Expect(os.WriteFile(path, []byte("creds"), 0600)).To(Succeed())
		}

		It("should return an existing path unchanged", func() {
			path := filepath.Join(tempDir, "abs-config")
			touch(path)

			found, ok := files.CredsFilePath(path)
			Expect(ok).To(BeTrue())
			Expect(found).To(Equal(path))
		})

		It("should look in the parent directory", func() {
			touch(filepath.Join(workDir, "..", "config"))

			found, ok := files.CredsFilePath("config")
			Expect(ok).To(BeTrue())
			Expect(found).To(Equal(filepath.Join("..", "config")))
		})

		It("should fall back to $HOME/.kube", func() {
			touch(filepath.Join(homeDir, ".kube", "config"))

			found, ok := files.CredsFilePath("config")
			Expect(ok).To(BeTrue())
			Expect(found).To(Equal(filepath.Join(homeDir, ".kube", "config")))
		})

		It("should prefer the parent directory over $HOME/.kube", func() {
			touch(filepath.Join(workDir, "..", "config"))
			touch(filepath.Join(homeDir, ".kube", "config"))

			found, ok := files.CredsFilePath("config")
			Expect(ok).To(BeTrue())
			Expect(found).To(Equal(filepath.Join("..", "config")))
		})

		It("should report a file found nowhere", func() {
			found, ok := files.CredsFilePath("config")
			Expect(ok).To(BeFalse())
			Expect(found).To(BeEmpty())
		})
	})
})
